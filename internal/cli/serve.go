package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-tutor/internal/adapters/http"
	"svw.info/sudoku-tutor/internal/constraint"
	"svw.info/sudoku-tutor/internal/generator"
	"svw.info/sudoku-tutor/internal/infrastructure/storage"
	"svw.info/sudoku-tutor/internal/platform/config"
	"svw.info/sudoku-tutor/internal/ports"
	"svw.info/sudoku-tutor/internal/solver"
	"svw.info/sudoku-tutor/internal/stepsolver"
	"svw.info/sudoku-tutor/internal/usecase"
)

var (
	serveAddr    string
	serveLevel   string
	serveSolver  string
	serveStorage string
	servePath    string
)

func init() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON HTTP API",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", cfg.Addr, "listen address")
	serveCmd.Flags().StringVar(&serveLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	serveCmd.Flags().StringVar(&serveSolver, "solver", cfg.Solver, "fast solve path: backtrack|dlx")
	serveCmd.Flags().StringVar(&serveStorage, "storage", cfg.Storage, "puzzle store: sqlite|fs")
	serveCmd.Flags().StringVar(&servePath, "storage-path", cfg.StoragePath, "save directory")

	rootCmd.AddCommand(serveCmd)
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(serveLevel)}))

	// Plain backtracking drives the technique fallback and the uniqueness
	// oracle; the fast solve path for /api/solve is selectable.
	bt := solver.NewBacktrackingSolver()
	var fast ports.Solver = bt
	if strings.EqualFold(strings.TrimSpace(serveSolver), "dlx") {
		fast = solver.NewDLXSolver()
	}

	if err := os.MkdirAll(servePath, 0o755); err != nil {
		return err
	}
	var st ports.Storage
	switch strings.ToLower(strings.TrimSpace(serveStorage)) {
	case "fs":
		st = storage.NewFS(servePath)
	default:
		db, err := storage.OpenSQLite(filepath.Join(servePath, "puzzles.db"))
		if err != nil {
			return err
		}
		defer db.Close()
		st = db
	}

	uc := usecase.NewService(fast, stepsolver.New(bt), generator.NewUniqueGenerator(bt), constraint.NewChecker(), st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", serveAddr, "storage", serveStorage, "solver", serveSolver)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
