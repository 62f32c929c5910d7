package main

import (
	"context"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "decoherence",
		Usage: "top-down demo on an infinite hex or square plane",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "decoherence.yaml",
				Usage:   "path to the yaml config (optional)",
			},
			&cli.StringFlag{
				Name:  "grid",
				Usage: "tile layout, hex or square (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "fullscreen",
				Usage: "start fullscreen",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := LoadConfig(cmd.String("config"))
			if err != nil {
				return err
			}
			if v := cmd.String("grid"); v != "" {
				cfg.Grid = v
			}

			game, err := NewGame(cfg)
			if err != nil {
				return err
			}

			ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
			ebiten.SetWindowTitle("Decoherence")
			ebiten.SetFullscreen(cmd.Bool("fullscreen"))
			return ebiten.RunGame(game)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
