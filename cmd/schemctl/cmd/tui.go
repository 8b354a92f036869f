package cmd

import (
	"fmt"

	"gridwire/interactive"
	"gridwire/render"
	"gridwire/router"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var tuiOut string

var tuiCmd = &cobra.Command{
	Use:   "tui <file>",
	Short: "Edit a canvas document interactively",
	Long: `tui opens a full-screen mouse-driven editor: click-drag a port to
draw a connector, click-drag a connector's body to move it, drag an
object to reroute everything attached to it, Escape cancels the
operation in progress and Ctrl-C quits.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		d, err := loadOrNew(args[0])
		if err != nil {
			return err
		}
		mtx := freshMatrix(d)

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		defer screen.Fini()
		screen.EnableMouse()

		caps := render.DetectCapabilities()
		sess := interactive.NewSession(screen, d, mtx, router.NewSimpleRouter())
		sess.OnRefresh(func() {
			render.Draw(screen, d, caps)
			screen.Show()
		})
		render.Draw(screen, d, caps)
		screen.Show()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				break
			}
			if !sess.HandleEvent(ev) {
				break
			}
		}

		out := tuiOut
		if out == "" {
			out = args[0]
		}
		return save(d, args[0], out)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringVar(&tuiOut, "out", "", "output path on quit (default: overwrite <file>)")
}
