package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-rush/internal/core"
)

// BestKeeper adapts a Store to core.BestStore for one game.
// Errors never reach the game; they are logged at debug level.
type BestKeeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewBestKeeper creates a best-score keeper. A nil logger discards output.
func NewBestKeeper(store *Store, gameID string, logger *log.Logger) *BestKeeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BestKeeper{store: store, gameID: gameID, logger: logger}
}

// LoadBest returns the stored best, or 0 when it cannot be read.
// Rounds recorded before any best was stored still count.
func (k *BestKeeper) LoadBest() int {
	best, err := k.store.BestScore(k.gameID)
	if err != nil {
		k.logger.Debug("load best failed", "game", k.gameID, "err", err)
		return 0
	}
	high, err := k.store.HighScore(k.gameID)
	if err != nil {
		k.logger.Debug("load high score failed", "game", k.gameID, "err", err)
		return best
	}
	return max(best, high)
}

// SaveBest stores score unless a higher best is already stored.
func (k *BestKeeper) SaveBest(score int) {
	if err := k.store.UpdateBest(k.gameID, score); err != nil {
		k.logger.Debug("save best failed", "game", k.gameID, "score", score, "err", err)
	}
}

var _ core.BestStore = (*BestKeeper)(nil)

// FileBest keeps the best score as a plain integer in a file.
// Used when the database is unavailable.
type FileBest struct {
	path string
}

// NewFileBest creates a file-backed best-score keeper. The file and its
// directory are created on first save.
func NewFileBest(path string) *FileBest {
	return &FileBest{path: path}
}

// LoadBest returns the stored best, or 0 if the file is missing or corrupt.
func (f *FileBest) LoadBest() int {
	best, err := f.read()
	if err != nil {
		return 0
	}
	return best
}

func (f *FileBest) read() (int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}
	best, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || best < 0 {
		return 0, fmt.Errorf("storage: corrupt best score in %s", f.path)
	}
	return best, nil
}

// SaveBest writes score. Write failures are ignored.
func (f *FileBest) SaveBest(score int) {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return
	}
	os.WriteFile(f.path, []byte(strconv.Itoa(score)+"\n"), 0o644) //nolint:errcheck // best-effort
}

var _ core.BestStore = (*FileBest)(nil)
