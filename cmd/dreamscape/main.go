package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/slalter/dreamscape/internal/client"
	"github.com/slalter/dreamscape/internal/commands"
	"github.com/slalter/dreamscape/internal/config"
	"github.com/slalter/dreamscape/internal/debug"
	"github.com/slalter/dreamscape/internal/graphics"
	"github.com/slalter/dreamscape/internal/hud"
	"github.com/slalter/dreamscape/internal/logger"
	"github.com/slalter/dreamscape/internal/scene"
	"github.com/slalter/dreamscape/internal/world"
)

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	sessionID := cfg.Server.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	log.Info("starting dreamscape client",
		zap.String("server", cfg.Server.URL),
		zap.String("session", sessionID))

	start := time.Now()
	scn := scene.New(log.Named("scene"), func() float64 {
		return time.Since(start).Seconds()
	})

	cl := client.New(log.Named("client"), cfg.Server.URL, sessionID)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := cl.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("connection lost for good", zap.Error(err))
		}
	}()

	reg := commands.NewRegistry()
	ui := hud.New(reg)
	ui.OnSubmit = cl.SendInput
	ui.ConnState = func() string { return cl.State().String() }

	dbg := debug.New()
	dbg.Stats = func() debug.SceneStats {
		return debug.SceneStats{
			Objects:    scn.Len(),
			Terrains:   scn.TerrainCount(),
			Animations: scn.AnimationCount(),
		}
	}

	registerCommands(reg, scn, dbg, ui, cl)

	handlers := client.Handlers{
		ObjectCreated:      scn.Create,
		ObjectModified:     scn.Modify,
		ObjectRemoved:      scn.Remove,
		EnvironmentUpdated: scn.SetEnvironment,
		TerrainCreated:     scn.AddTerrain,
		Narration:          ui.Narrate,
		Status:             ui.SetStatus,
		ServerError:        ui.Error,
		WorldState: func(ws world.WorldState) {
			applyWorldState(scn, ws)
		},
	}

	update := func(dt float32) {
		// Apply everything the stream delivered since the last tick, so
		// all mutations land before this frame renders.
	drain:
		for {
			select {
			case msg := <-cl.Events():
				client.Dispatch(log.Named("dispatch"), msg, handlers)
			default:
				break drain
			}
		}

		ui.Update()
		scn.UpdateCameraInput(dt, cfg.Controls.MouseSensitivity, cfg.Controls.MoveSpeed, !ui.IsOpen())
		scn.Advance()
	}

	graphics.Run(cfg.Graphics, graphics.Frame{
		Update: update,
		Camera: scn.Camera3D,
		Clear:  scn.SkyColor,
		Draw3D: scn.Draw,
		Draw2D: func() {
			ui.Draw()
			dbg.Draw()
		},
	})

	log.Info("shutting down")
}

// applyWorldState replaces the whole scene with a server snapshot. Objects
// are applied in name order so replays are deterministic.
func applyWorldState(scn *scene.Scene, ws world.WorldState) {
	scn.Clear()
	scn.SetEnvironment(ws.Environment)
	for _, t := range ws.Terrain {
		scn.AddTerrain(t)
	}
	names := make([]string, 0, len(ws.Objects))
	for name := range ws.Objects {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		obj := ws.Objects[name]
		if obj.Name == "" {
			obj.Name = name
		}
		scn.Create(obj)
	}
}

// registerCommands wires the local slash commands: overlay toggles and
// scene inspection. These never touch the backend.
func registerCommands(reg *commands.Registry, scn *scene.Scene, dbg *debug.Debug, ui *hud.HUD, cl *client.Client) {
	gridFS := flag.NewFlagSet("grid", flag.ContinueOnError)
	gridShow := gridFS.Bool("show", true, "show the editor grid")
	reg.Register("grid", gridFS, func() error {
		scn.GridVisible = *gridShow
		return nil
	})

	fpsFS := flag.NewFlagSet("fps", flag.ContinueOnError)
	reg.Register("fps", fpsFS, func() error {
		dbg.ShowFPS = !dbg.ShowFPS
		return nil
	})

	memFS := flag.NewFlagSet("mem", flag.ContinueOnError)
	reg.Register("mem", memFS, func() error {
		dbg.ShowMemAlloc = !dbg.ShowMemAlloc
		return nil
	})

	statsFS := flag.NewFlagSet("stats", flag.ContinueOnError)
	reg.Register("stats", statsFS, func() error {
		dbg.ShowScene = !dbg.ShowScene
		return nil
	})

	objectsFS := flag.NewFlagSet("objects", flag.ContinueOnError)
	reg.Register("objects", objectsFS, func() error {
		names := scn.Names()
		if len(names) == 0 {
			ui.Narrate("no objects in the scene")
			return nil
		}
		ui.Narrate(strings.Join(names, ", "))
		return nil
	})

	statusFS := flag.NewFlagSet("status", flag.ContinueOnError)
	reg.Register("status", statusFS, func() error {
		ui.Narrate("connection: " + cl.State().String())
		return nil
	})

	helpFS := flag.NewFlagSet("help", flag.ContinueOnError)
	reg.Register("help", helpFS, func() error {
		ui.Narrate("commands: /" + strings.Join(reg.Names(), " /"))
		return nil
	})
}
