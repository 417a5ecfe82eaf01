package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/holiday-clock/internal/config"
	"github.com/username/holiday-clock/internal/state"
)

func positionCmd() *cobra.Command {
	var drag string

	cmd := &cobra.Command{
		Use:   "position [X Y]",
		Short: "Show or set the saved clock position (fractions of the screen)",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return fmt.Errorf("both X and Y must be specified")
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			store := state.NewPositionStore(cfg.State.PositionFile, state.PositionOf(cfg.Clock), logger)
			if err := store.Load(); err != nil {
				return fmt.Errorf("failed to load position: %w", err)
			}

			if len(args) == 2 {
				x, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("invalid X: %w", err)
				}
				y, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("invalid Y: %w", err)
				}
				if err := store.SetPosition(x, y); err != nil {
					return err
				}
			}

			if drag != "" {
				enabled, err := strconv.ParseBool(drag)
				if err != nil {
					return fmt.Errorf("invalid --drag value: %w", err)
				}
				if err := store.SetDragEnabled(enabled); err != nil {
					return err
				}
			}

			p := store.Position()
			fmt.Fprintf(cmd.OutOrStdout(), "x=%.3f y=%.3f drag=%t\n", p.PosX, p.PosY, p.DragEnabled)
			return nil
		},
	}

	cmd.Flags().StringVar(&drag, "drag", "", "Enable or disable dragging (true/false)")

	return cmd
}

func presetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved clock presets",
	}

	cmd.AddCommand(presetListCmd())
	cmd.AddCommand(presetSaveCmd())
	cmd.AddCommand(presetRenameCmd())
	cmd.AddCommand(presetDeleteCmd())
	cmd.AddCommand(presetExportCmd())
	cmd.AddCommand(presetImportCmd())

	return cmd
}

func openPresets() (*config.Config, *state.PresetStore, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store := state.NewPresetStore(cfg.State.PresetsFile, logger)
	if err := store.Load(); err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

func presetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openPresets()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			presets := store.List()
			if len(presets) == 0 {
				fmt.Fprintln(out, "No presets saved")
				return nil
			}
			for _, p := range presets {
				created := time.UnixMilli(p.CreatedAt).Format("2006-01-02 15:04")
				fmt.Fprintf(out, "  %s  %s  %s\n", p.ID, created, p.Name)
			}
			return nil
		},
	}
}

func presetSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save NAME",
		Short: "Save the configured clock settings as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, err := openPresets()
			if err != nil {
				return err
			}

			s := cfg.Clock
			positions := state.NewPositionStore(cfg.State.PositionFile, state.PositionOf(s), logger)
			if err := positions.Load(); err != nil {
				logger.Warn("Failed to load clock position, saving configured one", zap.Error(err))
			}
			positions.Position().ApplyTo(&s)

			preset, err := store.Create(args[0], s)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Saved preset %q (%s)\n", preset.Name, preset.ID)
			return nil
		},
	}
}

func presetRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a preset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openPresets()
			if err != nil {
				return err
			}
			return store.Rename(args[0], args[1])
		},
	}
}

func presetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openPresets()
			if err != nil {
				return err
			}
			return store.Delete(args[0])
		},
	}
}

func presetExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export presets as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openPresets()
			if err != nil {
				return err
			}

			data, err := store.Export()
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}
			logger.Info("Presets exported", zap.String("file", output), zap.Int("count", len(store.List())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func presetImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import presets from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openPresets()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}

			n, err := store.Import(data)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Imported %d preset(s)\n", n)
			return nil
		},
	}
}
