package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/justinpbarnett/modal/internal/dialog"
)

var (
	caption string
	style   string
)

func addDialogFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&caption, "caption", "c", "", "dialog caption")
	cmd.Flags().StringVar(&style, "style", "", "frame style (menu, mainmenu, message)")
}

func dialogStyle() string {
	if style != "" {
		return style
	}
	return cfg.UI.Style
}

func show(req dialog.Request) sessionFunc {
	return func(_ context.Context, e *dialog.Engine) ([]string, error) {
		req.Style = dialogStyle()
		return []string{strconv.Itoa(e.Show(req))}, nil
	}
}

func kindCmd(use, short string, kind dialog.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [message]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dialog.Request{Kind: kind, Caption: caption}
			if len(args) > 0 {
				req.Message = args[0]
			}
			return runSession(cmd.Context(), show(req))
		},
	}
	addDialogFlags(cmd)
	return cmd
}

var (
	pickMessage string
	pickFilter  string
)

var pickCmd = &cobra.Command{
	Use:   "pick item...",
	Short: "Choose one item from a list",
	Long: `Show a list to pick from. Commas inside an item split it into aligned
columns. The unfiltered index of the chosen item is printed, or -1.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, index := filterItems(args, pickFilter)
		if len(items) == 0 {
			fmt.Println(-1)
			return nil
		}
		return runSession(cmd.Context(), func(_ context.Context, e *dialog.Engine) ([]string, error) {
			res := e.Show(dialog.Request{
				Kind:    dialog.OKCancel,
				Caption: orDefault(caption, e.Strings().Get("pick_caption")),
				Message: pickMessage,
				Items:   items,
				Style:   dialogStyle(),
			})
			if res < 0 || res >= len(index) {
				return []string{"-1"}, nil
			}
			return []string{strconv.Itoa(index[res]), args[index[res]]}, nil
		})
	},
}

// filterItems keeps the items matching query, best match first, and maps
// each kept item back to its position in items.
func filterItems(items []string, query string) ([]string, []int) {
	if query == "" {
		index := make([]int, len(items))
		for i := range index {
			index[i] = i
		}
		return items, index
	}
	matches := fuzzy.Find(query, items)
	kept := make([]string, 0, len(matches))
	index := make([]int, 0, len(matches))
	for _, m := range matches {
		kept = append(kept, m.Str)
		index = append(index, m.Index)
	}
	return kept, index
}

var (
	entryLabel string
	entryValue string
)

var inputCmd = &cobra.Command{
	Use:   "input [message]",
	Short: "Ask for a line of text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd.Context(), func(_ context.Context, e *dialog.Engine) ([]string, error) {
			text := entryValue
			req := dialog.Request{
				Kind:       dialog.OKCancel,
				Caption:    orDefault(caption, e.Strings().Get("input_caption")),
				EntryLabel: entryLabel,
				EntryText:  &text,
				Style:      dialogStyle(),
			}
			if len(args) > 0 {
				req.Message = args[0]
			}
			res := e.Show(req)
			if res != 0 {
				return []string{strconv.Itoa(res)}, nil
			}
			return []string{strconv.Itoa(res), text}, nil
		})
	},
}

var checked []int

var optionsCmd = &cobra.Command{
	Use:   "options label...",
	Short: "Toggle a set of options",
	Long:  `Show check boxes for each label and print label=true|false for each once the dialog closes.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := make([]dialog.Option, len(args))
		for i, label := range args {
			opts[i] = dialog.Option{Label: label}
		}
		for _, i := range checked {
			if i < 0 || i >= len(opts) {
				return fmt.Errorf("--checked %d out of range", i)
			}
			opts[i].Checked = true
		}
		return runSession(cmd.Context(), func(_ context.Context, e *dialog.Engine) ([]string, error) {
			res := e.Show(dialog.Request{
				Kind:    dialog.OKOnly,
				Caption: orDefault(caption, e.Strings().Get("options_caption")),
				Options: opts,
				Style:   dialogStyle(),
			})
			out := []string{strconv.Itoa(res)}
			for _, o := range opts {
				out = append(out, o.Label+"="+strconv.FormatBool(o.Checked))
			}
			return out, nil
		})
	},
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func init() {
	rootCmd.AddCommand(
		kindCmd("message", "Show a message; escape or a click closes it", dialog.Message),
		kindCmd("ok", "Show a message with an OK button", dialog.OKOnly),
		kindCmd("yesno", "Ask a yes/no question", dialog.YesNo),
		kindCmd("okcancel", "Ask for confirmation", dialog.OKCancel),
		pickCmd, inputCmd, optionsCmd,
	)

	addDialogFlags(pickCmd)
	pickCmd.Flags().StringVarP(&pickMessage, "message", "m", "", "text above the list")
	pickCmd.Flags().StringVarP(&pickFilter, "filter", "f", "", "fuzzy filter applied to the items")

	addDialogFlags(inputCmd)
	inputCmd.Flags().StringVar(&entryLabel, "label", "", "label left of the text box")
	inputCmd.Flags().StringVar(&entryValue, "value", "", "initial text")

	addDialogFlags(optionsCmd)
	optionsCmd.Flags().IntSliceVar(&checked, "checked", nil, "indexes of options checked initially")
}
