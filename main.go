package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/threadfeed/domain"
	"github.com/CrestNiraj12/threadfeed/infra/auth"
	"github.com/CrestNiraj12/threadfeed/infra/config"
	"github.com/CrestNiraj12/threadfeed/infra/metrics"
	"github.com/CrestNiraj12/threadfeed/infra/placeholder"
	"github.com/CrestNiraj12/threadfeed/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: threadfeed [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("threadfeed %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := config.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	logger.Info("starting", "version", version, "base_url", cfg.BaseURL)

	metrics.StartServer(cfg.MetricsAddr, logger)

	// 2. Build infrastructure.
	httpClient := placeholder.NewClient(cfg.BaseURL, auth.FromPath(cfg.TokenPath), placeholder.NewLimiter(cfg.RateLimit))
	resources := placeholder.NewResourceService(httpClient)

	uiState, err := config.LoadUIState(cfg.StatePath)
	if err != nil {
		logger.Warn("ignoring ui state", "path", cfg.StatePath, "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Context:       ctx,
		Resources:     resources,
		Logger:        logger,
		StatePath:     cfg.StatePath,
		InitialUserID: domain.UserID(uiState.SelectedUserID),
	})

	// 4. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	_, err = p.Run()
	cancel()
	if err != nil {
		logger.Error("program exited", "error", err)
		fmt.Fprintf(os.Stderr, "threadfeed: %v\n", err)
		os.Exit(1)
	}
}
