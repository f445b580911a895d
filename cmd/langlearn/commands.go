package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/YannErmes/langlearn/internal/archive"
	"github.com/YannErmes/langlearn/internal/cli"
	"github.com/YannErmes/langlearn/internal/exercise"
	"github.com/YannErmes/langlearn/internal/extract"
	"github.com/YannErmes/langlearn/internal/gemini"
	"github.com/YannErmes/langlearn/internal/models"
	"github.com/YannErmes/langlearn/internal/mutate"
	"github.com/YannErmes/langlearn/internal/processor"
	"github.com/YannErmes/langlearn/internal/storage"
)

// dataPath resolves the data file location from flag, config or default
func dataPath(flags *cli.Flags) string {
	if flags.DataFile != "" {
		return flags.DataFile
	}
	if path := viper.GetString("data.file"); path != "" {
		return path
	}
	return storage.DefaultDataPath()
}

// openStore opens the notebook store at the resolved data path
func openStore(flags *cli.Flags) *storage.Store {
	return storage.NewStore(storage.NewFileBackend(dataPath(flags)))
}

// geminiAPIKey resolves the Gemini key: environment and config win over
// the key stored in the notebook settings
func geminiAPIKey(doc storage.AppData) string {
	if key := cli.GetGeminiKey(); key != "" {
		return key
	}
	return doc.Settings.GeminiAPIKey
}

// truncate shortens a string to max runes for list output. Cutting on
// rune boundaries keeps multi-byte scripts like Cyrillic intact.
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func newTextCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Manage saved reading passages",
	}

	var title, videoURL string
	addCmd := &cobra.Command{
		Use:   "add [file]",
		Short: "Save a reading passage from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var content []byte
			var err error
			if len(args) == 1 {
				content, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read passage: %w", err)
				}
				if title == "" {
					title = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				}
			} else {
				content, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read passage from stdin: %w", err)
				}
			}
			passage := strings.TrimSpace(string(content))
			if passage == "" {
				return fmt.Errorf("passage is empty")
			}
			if title == "" {
				title = "Untitled"
			}

			store := openStore(flags)
			doc, id := mutate.AddText(store.Load(), mutate.AddTextRequest{
				Title:        title,
				OriginalText: passage,
				VideoURL:     videoURL,
			})
			if err := store.Save(doc); err != nil {
				return err
			}
			fmt.Printf("Saved text %s (%s)\n", id, title)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&title, "title", "t", "", "Title of the passage")
	addCmd.Flags().StringVar(&videoURL, "video-url", "", "Related video URL")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved texts",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := openStore(flags).Load()
			if len(doc.Texts) == 0 {
				fmt.Println("No saved texts")
				return nil
			}
			for _, t := range doc.Texts {
				fmt.Printf("%-22s  %-10s  %s\n", t.ID, t.Date[:10], truncate(t.Title, 40))
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := openStore(flags).Load()
			text, ok := doc.TextByID(args[0])
			if !ok {
				return fmt.Errorf("no saved text with id %s", args[0])
			}
			fmt.Printf("%s (%s)\n\n%s\n", text.Title, text.Date, text.OriginalText)
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a saved text (captured vocabulary survives)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			if err := store.Save(mutate.DeleteText(store.Load(), args[0])); err != nil {
				return err
			}
			fmt.Printf("Deleted text %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd, showCmd, rmCmd)
	return cmd
}

func newVocabCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Manage captured vocabulary",
	}

	addCmd := &cobra.Command{
		Use:   "add <text> [translation]",
		Short: "Capture a word or sentence, enriching it with translation, IPA and audio",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			providedTranslation := ""
			if len(args) == 2 {
				providedTranslation = args[1]
			}
			proc := processor.NewProcessor(flags, openStore(flags))
			id, err := proc.AddWord(args[0], providedTranslation)
			if err != nil {
				return err
			}
			fmt.Printf("\nAdded %s\n", id)
			return nil
		},
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk import words from a file (word or 'word = translation' per line)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.BatchFile = args[0]
			proc := processor.NewProcessor(flags, openStore(flags))
			return proc.ImportBatch(args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List vocabulary entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := openStore(flags).Load()
			if len(doc.Vocab) == 0 {
				fmt.Println("No vocabulary yet")
				return nil
			}
			for _, v := range doc.Vocab {
				ipa := v.IPA
				if ipa != "" {
					ipa = "/" + ipa + "/"
				}
				fmt.Printf("%-22s  %-8s  %-20s  %-14s  %-20s  used %d\n",
					v.ID, v.Type, truncate(v.Text, 20), truncate(ipa, 14),
					truncate(v.Translation, 20), v.UsageCount)
			}
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a vocabulary entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			if err := store.Save(mutate.DeleteVocab(store.Load(), args[0])); err != nil {
				return err
			}
			fmt.Printf("Deleted entry %s\n", args[0])
			return nil
		},
	}

	usedCmd := &cobra.Command{
		Use:   "used <id>",
		Short: "Record a practice use of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			doc := store.Load()
			if _, ok := doc.VocabByID(args[0]); !ok {
				return fmt.Errorf("no vocabulary entry with id %s", args[0])
			}
			if err := store.Save(mutate.MarkVocabUsed(doc, args[0])); err != nil {
				return err
			}
			entry, _ := store.Load().VocabByID(args[0])
			fmt.Printf("'%s' used %d times\n", entry.Text, entry.UsageCount)
			return nil
		},
	}

	enrichCmd := &cobra.Command{
		Use:   "enrich <id>",
		Short: "Fill in missing translation, IPA and audio on an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc := processor.NewProcessor(flags, openStore(flags))
			return proc.EnrichVocab(args[0])
		},
	}

	var format, output string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export vocabulary as an Anki deck, CSV or HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			switch format {
			case "apkg":
				proc := processor.NewProcessor(flags, store)
				path, err := proc.GenerateAnkiFile()
				if err != nil {
					return err
				}
				fmt.Printf("Anki deck created: %s\n", path)
				return nil
			case "csv", "html":
				doc := store.Load()
				var content string
				if format == "csv" {
					content = storage.ExportVocabCSV(doc)
				} else {
					content = storage.ExportVocabHTML(doc)
				}
				if output == "" {
					fmt.Print(content)
					return nil
				}
				if err := os.WriteFile(output, []byte(content), 0644); err != nil {
					return fmt.Errorf("failed to write export: %w", err)
				}
				fmt.Printf("Exported %d entries to %s\n", len(doc.Vocab), output)
				return nil
			default:
				return fmt.Errorf("unknown export format: %s (use apkg, csv or html)", format)
			}
		},
	}
	exportCmd.Flags().StringVar(&format, "export-format", "apkg", "Export format: apkg, csv or html")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "Output file for csv/html exports (default stdout)")

	defineCmd := &cobra.Command{
		Use:   "define <word>",
		Short: "Ask Gemini for a short definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			doc := openStore(flags).Load()
			ctx := context.Background()
			client, err := gemini.NewClient(ctx, geminiAPIKey(doc), flags.GeminiModel)
			if err == nil {
				var meaning string
				meaning, err = client.Define(ctx, word)
				if err == nil {
					fmt.Println(meaning)
					return nil
				}
			}
			// Degrade to a search link when Gemini is unavailable
			fmt.Fprintf(os.Stderr, "Warning: definition lookup failed: %v\n", err)
			fmt.Printf("Look it up: %s\n", gemini.SearchURL(word))
			return nil
		},
	}

	cmd.AddCommand(addCmd, importCmd, listCmd, rmCmd, usedCmd, enrichCmd, exportCmd, defineCmd)
	return cmd
}

func newGrabCommand(flags *cli.Flags) *cobra.Command {
	var offset int
	cmd := &cobra.Command{
		Use:   "grab <text-id> <selection>",
		Short: "Capture a selection from a saved text into the vocabulary",
		Long: `grab captures a selection from a saved text the way selecting it in a
reader would: a single word is stored together with its surrounding
sentence as context, a multi-word selection is stored as a sentence.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			doc := store.Load()
			text, ok := doc.TextByID(args[0])
			if !ok {
				return fmt.Errorf("no saved text with id %s", args[0])
			}

			selection := args[1]
			if offset < 0 {
				offset = strings.Index(text.OriginalText, selection)
				if offset < 0 {
					return fmt.Errorf("selection not found in text")
				}
			}

			result, ok := extract.Extract(extract.Selection{
				Text:     selection,
				NodeText: text.OriginalText,
				Offset:   offset,
			})
			if !ok {
				return fmt.Errorf("nothing to grab: selection is empty")
			}

			for _, v := range doc.Vocab {
				if strings.EqualFold(v.Text, result.Text) {
					return fmt.Errorf("'%s' is already in the notebook", result.Text)
				}
			}

			doc, id := mutate.AddVocab(doc, mutate.AddVocabRequest{
				Text:    result.Text,
				Type:    result.Type,
				Context: result.Context,
				TextID:  text.ID,
			})
			if err := store.Save(doc); err != nil {
				return err
			}

			fmt.Printf("Grabbed '%s' (%s)\n", result.Text, result.Type)
			if result.Context != "" {
				fmt.Printf("Context: %s\n", result.Context)
			}
			fmt.Printf("Added %s (run 'langlearn vocab enrich %s' to fetch translation, IPA and audio)\n", id, id)
			return nil
		},
	}
	cmd.Flags().IntVar(&offset, "offset", -1, "Byte offset of the selection in the text (default: first occurrence)")
	return cmd
}

func newExerciseCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Generate and manage comprehension exercises",
	}

	generateCmd := &cobra.Command{
		Use:   "generate <text-id> <words>",
		Short: "Generate comprehension questions for a saved text",
		Long: `generate asks Gemini for numbered comprehension questions about a saved
text. Words is a comma-separated list of target words or expressions
(at most 10) that the questions must exercise.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			doc := store.Load()
			text, ok := doc.TextByID(args[0])
			if !ok {
				return fmt.Errorf("no saved text with id %s", args[0])
			}

			words, err := exercise.ParseTargetWords(args[1])
			if err != nil {
				return err
			}

			ctx := context.Background()
			client, err := gemini.NewClient(ctx, geminiAPIKey(doc), flags.GeminiModel)
			if err != nil {
				return err
			}

			fmt.Printf("Generating %d questions for '%s'...\n", flags.Questions, text.Title)
			questions, err := exercise.NewGenerator(client).Generate(ctx, exercise.Request{
				Passage:      text.OriginalText,
				Words:        words,
				NumQuestions: flags.Questions,
			})
			if err != nil {
				return err
			}

			doc, id := mutate.AddExercise(doc, mutate.AddExerciseRequest{
				TextID:    text.ID,
				Words:     words,
				Questions: questions,
			})
			if err := store.Save(doc); err != nil {
				return err
			}

			fmt.Printf("\nSaved exercise %s:\n", id)
			for i, q := range questions {
				fmt.Printf("%d. %s\n", i+1, q.Q)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved exercises",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := openStore(flags).Load()
			if len(doc.Exercises) == 0 {
				fmt.Println("No saved exercises")
				return nil
			}
			for _, e := range doc.Exercises {
				title := e.TextID
				if text, ok := doc.TextByID(e.TextID); ok {
					title = text.Title
				}
				fmt.Printf("%-22s  %-30s  %d questions  (%s)\n",
					e.ID, truncate(title, 30), len(e.Questions), strings.Join(e.Words, ", "))
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the questions of a saved exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := openStore(flags).Load()
			for _, e := range doc.Exercises {
				if e.ID != args[0] {
					continue
				}
				fmt.Printf("Target words: %s\n\n", strings.Join(e.Words, ", "))
				for i, q := range e.Questions {
					fmt.Printf("%d. %s\n", i+1, q.Q)
					if q.A != "" {
						fmt.Printf("   Answer: %s\n", q.A)
					}
				}
				return nil
			}
			return fmt.Errorf("no exercise with id %s", args[0])
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a saved exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			if err := store.Save(mutate.DeleteExercise(store.Load(), args[0])); err != nil {
				return err
			}
			fmt.Printf("Deleted exercise %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(generateCmd, listCmd, showCmd, rmCmd)
	return cmd
}

func newGoalCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage weekly goals",
	}

	addCmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a weekly goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			doc, id := mutate.AddGoal(store.Load(), strings.Join(args, " "))
			if err := store.Save(doc); err != nil {
				return err
			}
			fmt.Printf("Added goal %s\n", id)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List weekly goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := openStore(flags).Load()
			if len(doc.Goals) == 0 {
				fmt.Println("No goals yet")
				return nil
			}
			for _, g := range doc.Goals {
				mark := " "
				if g.Completed {
					mark = "x"
				}
				fmt.Printf("[%s] %-22s  %s\n", mark, g.ID, g.Text)
			}
			return nil
		},
	}

	doneCmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a goal as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			completed := true
			doc := mutate.UpdateGoal(store.Load(), args[0], mutate.GoalUpdate{Completed: &completed})
			if err := store.Save(doc); err != nil {
				return err
			}
			fmt.Printf("Completed goal %s\n", args[0])
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			if err := store.Save(mutate.DeleteGoal(store.Load(), args[0])); err != nil {
				return err
			}
			fmt.Printf("Deleted goal %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd, doneCmd, rmCmd)
	return cmd
}

func newTwisterCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twister",
		Short: "Practice tongue twisters",
	}

	var unpracticed bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tongue twisters",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := openStore(flags).Load()
			for _, tw := range doc.TongueTwisters {
				if unpracticed && tw.Practiced {
					continue
				}
				mark := " "
				if tw.Practiced {
					mark = "x"
				}
				fmt.Printf("[%s] %-5s  difficulty %d  %s\n", mark, tw.ID, tw.Difficulty, tw.Text)
			}
			return nil
		},
	}
	listCmd.Flags().BoolVar(&unpracticed, "unpracticed", false, "Only show twisters not yet practiced")

	practicedCmd := &cobra.Command{
		Use:   "practiced <id>",
		Short: "Toggle the practiced flag on a twister",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			doc := mutate.ToggleTongueTwisterPracticed(store.Load(), args[0])
			if err := store.Save(doc); err != nil {
				return err
			}
			fmt.Printf("Toggled %s\n", args[0])
			return nil
		},
	}

	sayCmd := &cobra.Command{
		Use:   "say <id>",
		Short: "Generate pronunciation audio for a twister",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			doc := store.Load()
			for _, tw := range doc.TongueTwisters {
				if tw.ID != args[0] {
					continue
				}
				proc := processor.NewProcessor(flags, store)
				path, err := proc.GenerateAudioFile(tw.Text)
				if err != nil {
					return err
				}
				fmt.Printf("Audio: %s\n", path)
				return nil
			}
			return fmt.Errorf("no tongue twister with id %s", args[0])
		},
	}

	cmd.AddCommand(listCmd, practicedCmd, sayCmd)
	return cmd
}

func newPdfCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Track external PDF documents",
	}

	var name string
	addCmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Remember a PDF file path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = filepath.Base(args[0])
			}
			store := openStore(flags)
			doc, id := mutate.AddPdfPath(store.Load(), args[0], name)
			if err := store.Save(doc); err != nil {
				return err
			}
			fmt.Printf("Added PDF %s\n", id)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Display name (default: file name)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked PDFs",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := openStore(flags).Load()
			if len(doc.PdfPaths) == 0 {
				fmt.Println("No PDFs tracked")
				return nil
			}
			for _, p := range doc.PdfPaths {
				fmt.Printf("%-22s  %-30s  %s\n", p.ID, truncate(p.Name, 30), p.Path)
			}
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Forget a tracked PDF (the file itself is untouched)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			if err := store.Save(mutate.DeletePdfPath(store.Load(), args[0])); err != nil {
				return err
			}
			fmt.Printf("Removed PDF %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd, rmCmd)
	return cmd
}

func newTagCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage the global vocabulary tag list",
	}

	addCmd := &cobra.Command{
		Use:   "add <tag>",
		Short: "Add a tag to the global list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			if err := store.Save(mutate.AddTag(store.Load(), args[0])); err != nil {
				return err
			}
			fmt.Printf("Added tag '%s'\n", args[0])
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List global tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := openStore(flags).Load()
			if len(doc.Tags) == 0 {
				fmt.Println("No tags yet")
				return nil
			}
			for _, tag := range doc.Tags {
				fmt.Println(tag)
			}
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <tag>",
		Short: "Remove a tag from the global list (entry tags are untouched)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(flags)
			if err := store.Save(mutate.RemoveTag(store.Load(), args[0])); err != nil {
				return err
			}
			fmt.Printf("Removed tag '%s'\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd, rmCmd)
	return cmd
}

func newSettingsCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change notebook settings",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := openStore(flags).Load()
			key := "(not set)"
			if doc.Settings.GeminiAPIKey != "" {
				key = "(set)"
			}
			fmt.Printf("Font size:      %d\n", doc.Settings.FontSize)
			fmt.Printf("Theme:          %s\n", doc.Settings.Theme)
			fmt.Printf("Gemini API key: %s\n", key)
			return nil
		},
	}

	var fontSize int
	var theme, geminiKey string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch mutate.SettingsUpdate
			if cmd.Flags().Changed("font-size") {
				patch.FontSize = &fontSize
			}
			if cmd.Flags().Changed("theme") {
				t := storage.Theme(theme)
				if t != storage.ThemeLight && t != storage.ThemeDark && t != storage.ThemeSystem {
					return fmt.Errorf("unknown theme: %s (use light, dark or system)", theme)
				}
				patch.Theme = &t
			}
			if cmd.Flags().Changed("gemini-key") {
				patch.GeminiAPIKey = &geminiKey
			}
			if patch.FontSize == nil && patch.Theme == nil && patch.GeminiAPIKey == nil {
				return fmt.Errorf("nothing to change (use --font-size, --theme or --gemini-key)")
			}

			store := openStore(flags)
			if err := store.Save(mutate.UpdateSettings(store.Load(), patch)); err != nil {
				return err
			}
			fmt.Println("Settings updated")
			return nil
		},
	}
	setCmd.Flags().IntVar(&fontSize, "font-size", 16, "Reader font size")
	setCmd.Flags().StringVar(&theme, "theme", "", "Theme: light, dark or system")
	setCmd.Flags().StringVar(&geminiKey, "gemini-key", "", "Gemini API key stored in the notebook")

	cmd.AddCommand(showCmd, setCmd)
	return cmd
}

func newDataCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Manage the notebook data file",
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the data file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(dataPath(flags))
			return nil
		},
	}

	var output string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole notebook as pretty-printed JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := openStore(flags).Export()
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Println(content)
				return nil
			}
			if err := os.WriteFile(output, []byte(content), 0600); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Printf("Exported notebook to %s\n", output)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the notebook with a JSON export (current data is backed up first)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}

			backupCurrentData(flags)

			if !openStore(flags).Import(string(content)) {
				return fmt.Errorf("import failed: %s is not a valid notebook export", args[0])
			}
			fmt.Println("Notebook imported")
			return nil
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the notebook to its defaults (current data is backed up first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			backupCurrentData(flags)

			if err := openStore(flags).Reset(); err != nil {
				return err
			}
			fmt.Println("Notebook reset to defaults")
			return nil
		},
	}

	cmd.AddCommand(pathCmd, exportCmd, importCmd, resetCmd)
	return cmd
}

// backupCurrentData archives the data file before a destructive operation.
// A missing file or failed backup only warns, the operation proceeds.
func backupCurrentData(flags *cli.Flags) {
	path := dataPath(flags)
	if _, err := os.Stat(path); err != nil {
		return
	}
	if _, err := archive.ArchiveDataFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to back up data file: %v\n", err)
	}
}

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available OpenAI models for the current API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			lister := models.NewLister(cli.GetOpenAIKey())
			return lister.ListAvailableModels()
		},
	}
}
