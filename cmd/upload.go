package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/services"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/ui"
)

const (
	// progressTickInterval drives the simulated progress while a request is
	// in flight.
	progressTickInterval = 200 * time.Millisecond

	// settleDelay keeps a finished upload visible in the processing state
	// briefly before it flips to completed.
	settleDelay = 2 * time.Second
)

var uploadWatchDir string

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload [files...]",
	Short: "Upload documents for analysis",
	Long: `Upload one or more documents and track their progress live.

Each file is sent as its own request; progress is simulated while the
request is in flight and resolves when the backend answers. A file the
backend already knows is flagged as a duplicate but still succeeds.

Examples:
  docan upload report.pdf
  docan upload *.pdf notes.docx
  docan upload --watch ./inbox`,
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadWatchDir, "watch", "w", "", "Watch a directory and upload new files as they appear")
}

func runUpload(cmd *cobra.Command, args []string) error {
	if uploadWatchDir != "" {
		return runUploadWatch(uploadWatchDir)
	}
	if len(args) == 0 {
		return fmt.Errorf("no files given (or use --watch)")
	}

	uploads, err := prepareUploads(args)
	if err != nil {
		return err
	}

	m := newUploadModel(uploads)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running upload view: %w", err)
	}

	fm := final.(uploadModel)
	listService.Invalidate()
	printUploadSummary(fm)
	if fm.authFailed {
		fmt.Println(ui.FormatWarning("Session expired or not signed in"))
		fmt.Println(ui.FormatInfo("Run 'docan login' and try again"))
	}
	return nil
}

// prepareUploads stats each file and builds the upload entities.
func prepareUploads(paths []string) ([]*domain.Upload, error) {
	uploads := make([]*domain.Upload, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", path, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory (use --watch to monitor one)", path)
		}
		uploads = append(uploads, domain.NewUpload(
			filepath.Base(path),
			path,
			contentTypeFor(path),
			info.Size(),
		))
	}
	return uploads, nil
}

func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// Upload TUI

type progressTickMsg time.Time

type uploadDoneMsg services.UploadOutcome

type settleMsg struct{ id string }

type uploadModel struct {
	tracker    *services.Tracker
	service    *services.UploadService
	bar        progress.Model
	width      int
	settling   int // uploads waiting out the settle delay
	authFail   *bool
	authFailed bool
}

func newUploadModel(uploads []*domain.Upload) uploadModel {
	tracker := services.NewTracker()
	tracker.Append(uploads...)

	authFail := false
	svc := services.NewUploadService(apiClient, func() { authFail = true })

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30

	return uploadModel{
		tracker:  tracker,
		service:  svc,
		bar:      bar,
		width:    80,
		authFail: &authFail,
	}
}

func (m uploadModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, m.tracker.Len()+1)
	for _, u := range m.tracker.Items() {
		cmds = append(cmds, m.startUpload(u))
	}
	cmds = append(cmds, progressTick())
	return tea.Batch(cmds...)
}

func progressTick() tea.Cmd {
	return tea.Tick(progressTickInterval, func(t time.Time) tea.Msg {
		return progressTickMsg(t)
	})
}

func (m uploadModel) startUpload(u domain.Upload) tea.Cmd {
	return func() tea.Msg {
		return uploadDoneMsg(m.service.Do(getContext(), u))
	}
}

func (m uploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		barWidth := msg.Width - 50
		if barWidth < 10 {
			barWidth = 10
		}
		if barWidth > 40 {
			barWidth = 40
		}
		m.bar.Width = barWidth
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil

	case progressTickMsg:
		m.tracker.Tick()
		if m.tracker.Done() && m.settling == 0 {
			return m, tea.Quit
		}
		return m, progressTick()

	case uploadDoneMsg:
		outcome := services.UploadOutcome(msg)
		m.service.Apply(m.tracker, outcome)
		m.authFailed = *m.authFail
		if outcome.Err == nil {
			m.settling++
			id := outcome.ID
			return m, tea.Tick(settleDelay, func(time.Time) tea.Msg {
				return settleMsg{id: id}
			})
		}
		return m, nil

	case settleMsg:
		m.tracker.Complete(msg.id)
		m.settling--
		if m.tracker.Done() && m.settling == 0 {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

func (m uploadModel) View() string {
	var s strings.Builder
	s.WriteString(ui.FormatTitle("Uploading"))
	s.WriteString("\n\n")

	for _, u := range m.tracker.Items() {
		s.WriteString(m.renderUpload(u))
	}

	s.WriteString("\n")
	s.WriteString(ui.StyleMuted.Render("Press q to dismiss (requests already sent keep processing server-side)"))
	s.WriteString("\n")
	return s.String()
}

func (m uploadModel) renderUpload(u domain.Upload) string {
	name := ui.Truncate(u.Filename, 28)
	line := fmt.Sprintf("  %-30s %s %s",
		name,
		m.bar.ViewAs(float64(u.Progress)/100.0),
		ui.FormatStatus(string(u.Status)),
	)

	if u.Status == domain.StatusError && u.Error != "" {
		line += "\n    " + ui.StyleError.Render(ui.Truncate(u.Error, m.width-6))
	}
	if u.Duplicate {
		line += " " + ui.StyleWarning.Render("(duplicate)")
	}
	return line + "\n"
}

func printUploadSummary(m uploadModel) {
	ok, failed := 0, 0
	for _, u := range m.tracker.Items() {
		switch u.Status {
		case domain.StatusCompleted:
			ok++
			label := u.Filename
			if u.Duplicate {
				label += " (already in corpus)"
			}
			fmt.Println(ui.FormatSuccess(label))
		case domain.StatusError:
			failed++
			fmt.Println(ui.FormatError(u.Filename + ": " + u.Error))
		default:
			fmt.Println(ui.FormatWarning(u.Filename + ": interrupted"))
		}
	}
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d uploaded, %d failed", ok, failed)))
}

// Watch mode

func runUploadWatch(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	fmt.Println(ui.FormatInfo("Watching: " + dir))
	fmt.Println(ui.FormatMuted("New files are uploaded automatically. Press Ctrl+C to stop"))
	fmt.Println()

	svc := services.NewUploadService(apiClient, func() {
		fmt.Println(ui.FormatWarning("Session expired, run 'docan login' and restart the watcher"))
	})

	// Debounce per path so editors that write in bursts trigger one upload.
	debounce := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond
	timers := make(map[string]*time.Timer)

	upload := func(path string) {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return
		}
		u := domain.NewUpload(filepath.Base(path), path, contentTypeFor(path), info.Size())
		outcome := svc.Do(getContext(), *u)
		if outcome.Err != nil {
			fmt.Println(ui.FormatError(u.Filename + ": " + outcome.Err.Error()))
			return
		}
		listService.Invalidate()
		label := u.Filename
		if outcome.Result.Duplicate {
			label += " (already in corpus)"
		}
		fmt.Println(ui.FormatSuccess("Uploaded " + label))
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			baseName := filepath.Base(event.Name)
			if strings.HasPrefix(baseName, ".") || strings.HasPrefix(baseName, "~") {
				continue
			}

			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				path := event.Name
				if t, exists := timers[path]; exists {
					t.Stop()
				}
				timers[path] = time.AfterFunc(debounce, func() { upload(path) })
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			appLogger.Warn("watcher error", "error", err)
		}
	}
}
