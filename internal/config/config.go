package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickprogramme/substats/internal/assets"
	"github.com/patrickprogramme/substats/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// DefaultFileName : nom du fichier de config cherché à côté du binaire.
const DefaultFileName = "substats.yaml"

// struct pour les paramètres de configuration
type Config struct {
	// Rapport
	Language       string `yaml:"language"`
	CountStrategy  string `yaml:"count_strategy"`
	DetectLanguage bool   `yaml:"detect_language"`

	// Largeur des lignes en pixels
	WideLines struct {
		Enabled  bool    `yaml:"enabled"`
		FontSize float64 `yaml:"font_size"`
	} `yaml:"wide_lines"`

	// Chemins
	OutputDir string `yaml:"output_dir"`

	// Export
	Export struct {
		Overwrite bool   `yaml:"overwrite"`
		Encoding  string `yaml:"encoding"`
	} `yaml:"export"`

	CopyToClipboard bool   `yaml:"copy_to_clipboard"`
	LogLevel        string `yaml:"log_level"`

	// Téléchargement (sources http/https)
	Fetch struct {
		TimeoutSec int   `yaml:"timeout_sec"`
		MaxBytes   int64 `yaml:"max_bytes"`
	} `yaml:"fetch"`

	// Mode watch
	Watch struct {
		DebounceMs int `yaml:"debounce_ms"`
	} `yaml:"watch"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Rapport
	c.Language = "en"
	c.CountStrategy = "all"
	c.DetectLanguage = false

	c.WideLines.Enabled = false
	c.WideLines.FontSize = 28

	// Chemins
	c.OutputDir = "."

	// Export
	c.Export.Overwrite = false
	c.Export.Encoding = "utf-8"

	c.CopyToClipboard = false
	c.LogLevel = "info"

	c.Fetch.TimeoutSec = 15
	c.Fetch.MaxBytes = 10_000_000

	c.Watch.DebounceMs = 300

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Default retourne la configuration par défaut (sans fichier).
func Default() *Config {
	c := defaultConfig()
	c.normalizeConfig()
	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	// lire le YAML brut et déserialiser dans cfg (les champs présents écraseront les defaults)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		// orchestrateConfigUpgrade doit faire la sauvegarde, migrer et écrire la config
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		cfg.normalizeConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration %s invalide : %w", path, err)
	}
	return cfg, nil
}

// Path retourne le chemin du fichier chargé ("" pour Default()).
func (c *Config) Path() string {
	return c.configFilePath
}

// FetchTimeout : timeout des téléchargements.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSec) * time.Second
}

// WatchDebounce : délai de regroupement des événements du mode watch.
func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	// lire l'asset embarqué via assets.Embedded et DefaultConfigAsset
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels, crée le dossier parent)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	// stdout est réservé au rapport
	fmt.Fprintf(os.Stderr, "info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	c.OutputDir = filepath.Clean(c.OutputDir)

	// Trim and normalize strings
	c.Language = strings.TrimSpace(c.Language)
	if c.Language == "" {
		c.Language = "en"
	}
	c.CountStrategy = strings.TrimSpace(strings.ToLower(c.CountStrategy))
	if c.CountStrategy == "" {
		c.CountStrategy = "all"
	}
	c.Export.Encoding = strings.TrimSpace(c.Export.Encoding)
	if c.Export.Encoding == "" {
		c.Export.Encoding = "utf-8"
	}
	c.LogLevel = strings.TrimSpace(strings.ToLower(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Fetch.TimeoutSec <= 0 {
		c.Fetch.TimeoutSec = 15
	}
	if c.Fetch.MaxBytes <= 0 {
		c.Fetch.MaxBytes = 10_000_000
	}
	if c.Watch.DebounceMs < 0 {
		c.Watch.DebounceMs = 0
	}
}
