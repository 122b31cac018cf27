package config

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/bnema/aistudio-video-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	yaml "go.yaml.in/yaml/v3"
)

const (
	configFileMode  = 0o644
	configDirMode   = 0o755
	tempFilePattern = ".avg-config-*.tmp"
)

// Store persists a configuration file for the editing commands.
type Store struct {
	path   string
	fs     afero.Fs
	loader *Loader
	mu     *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ConfigRepository = (*Store)(nil)

func NewStore(fsys afero.Fs, path string) (*Store, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if _, err := formatOf(path); err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Store{path: absPath, fs: fsys, loader: NewLoader(fsys), mu: lockForPath(absPath)}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Exists() (bool, error) {
	return afero.Exists(s.fs, s.path)
}

func (s *Store) Load(ctx context.Context) (domain.Config, error) {
	if err := ctx.Err(); err != nil {
		return domain.Config{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loader.LoadFile(s.path)
}

func (s *Store) Save(ctx context.Context, cfg domain.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(s.path, cfg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(data)
}

// Encode renders cfg in the format implied by path's extension.
func Encode(path string, cfg domain.Config) ([]byte, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	file := toSchema(cfg)
	switch format {
	case "toml":
		data, err := toml.Marshal(file)
		if err != nil {
			return nil, fmt.Errorf("encode config: %w", err)
		}
		return data, nil
	case "yaml":
		data, err := yaml.Marshal(file)
		if err != nil {
			return nil, fmt.Errorf("encode config: %w", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(file, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode config: %w", err)
		}
		return append(data, '\n'), nil
	}
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("%w: unsupported config format %q", domain.ErrConfigInvalid, filepath.Ext(path))
	}
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (s *Store) write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := afero.TempFile(s.fs, dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = s.fs.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := s.fs.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false

	if err := s.fs.Chmod(s.path, configFileMode); err != nil {
		return fmt.Errorf("chmod config file: %w", err)
	}

	return nil
}
