package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath                = "."
	defaultMaxRequestBodySize  = "100KB"
	defaultWorkerPort          = 8081
	defaultClaimLease          = 5 * time.Minute
	defaultSweepTimezone       = "Asia/Amman"
	defaultUnverifiedRetention = 48 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	// Worker configuration for the event worker binary
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// Firebase configuration shared by the store, identity and push clients
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for request events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Fanout configuration for the donor fan-out dispatcher
	Fanout *FanoutConfig `json:"fanout" yaml:"fanout"`

	// Sweeps configuration for the scheduled cleanup jobs
	Sweeps *SweepsConfig `json:"sweeps" yaml:"sweeps"`

	// QRCode configuration for request share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type HTTPConfig struct {
	Port               int    `json:"port" yaml:"port"`
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// WorkerConfig defines the event worker HTTP endpoint
type WorkerConfig struct {
	HTTP HTTPConfig `json:"http" yaml:"http"`

	// PushAuth verifies OIDC tokens attached to Pub/Sub and hook deliveries
	PushAuth struct {
		Enabled  bool   `json:"enabled" yaml:"enabled"`
		Audience string `json:"audience" yaml:"audience"`
	} `json:"pushAuth" yaml:"pushAuth"`
}

// FirebaseConfig defines the Firebase project used for Firestore, Auth and FCM
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FanoutConfig controls how a new blood request reaches donors
type FanoutConfig struct {
	// Inline runs the fan-out inside the create-request call
	Inline bool `json:"inline" yaml:"inline"`

	// MatchBloodType restricts recipients to donors of the requested blood type
	MatchBloodType bool `json:"matchBloodType" yaml:"matchBloodType"`

	// ActiveOnly restricts recipients to donors holding a push token
	ActiveOnly bool `json:"activeOnly" yaml:"activeOnly"`

	// ClaimLease is how long a claimed fan-out blocks other runs
	ClaimLease time.Duration `json:"claimLease" yaml:"claimLease"`

	// PruneInvalidTokens clears push tokens the push service reports as dead
	PruneInvalidTokens bool `json:"pruneInvalidTokens" yaml:"pruneInvalidTokens"`
}

// SweepsConfig defines the daily cleanup schedule
type SweepsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Timezone the daily schedules are evaluated in
	Timezone string `json:"timezone" yaml:"timezone"`

	// UnverifiedRetention is the age after which unverified accounts are removed
	UnverifiedRetention time.Duration `json:"unverifiedRetention" yaml:"unverifiedRetention"`

	// Daily run times in HH:MM
	UnverifiedAccountsAt  string `json:"unverifiedAccountsAt" yaml:"unverifiedAccountsAt"`
	OrphanMessagesAt      string `json:"orphanMessagesAt" yaml:"orphanMessagesAt"`
	OrphanNotificationsAt string `json:"orphanNotificationsAt" yaml:"orphanNotificationsAt"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override the file.
	// Example: FANOUT_CLAIMLEASE -> fanout.claimLease
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.HTTP.Port == 0 {
		cfg.Worker.HTTP.Port = defaultWorkerPort
	}
	if strings.TrimSpace(cfg.Worker.HTTP.MaxRequestBodySize) == "" {
		cfg.Worker.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.Fanout == nil {
		cfg.Fanout = &FanoutConfig{MatchBloodType: true, ActiveOnly: true}
	}
	if cfg.Fanout.ClaimLease <= 0 {
		cfg.Fanout.ClaimLease = defaultClaimLease
	}

	if cfg.Sweeps == nil {
		cfg.Sweeps = &SweepsConfig{Enabled: true}
	}
	if cfg.Sweeps.Timezone == "" {
		cfg.Sweeps.Timezone = defaultSweepTimezone
	}
	if cfg.Sweeps.UnverifiedRetention <= 0 {
		cfg.Sweeps.UnverifiedRetention = defaultUnverifiedRetention
	}
	if cfg.Sweeps.UnverifiedAccountsAt == "" {
		cfg.Sweeps.UnverifiedAccountsAt = "03:00"
	}
	if cfg.Sweeps.OrphanMessagesAt == "" {
		cfg.Sweeps.OrphanMessagesAt = "04:00"
	}
	if cfg.Sweeps.OrphanNotificationsAt == "" {
		cfg.Sweeps.OrphanNotificationsAt = "05:35"
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = 256
	}
}

// Validate rejects settings that would only fail later at runtime.
func (cfg *Config) Validate() error {
	switch cfg.PubSub.Provider {
	case "", "local", "google":
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.PubSub.Provider)
	}

	if _, err := time.LoadLocation(cfg.Sweeps.Timezone); err != nil {
		return errors.Wrapf(err, "invalid sweeps timezone %q", cfg.Sweeps.Timezone)
	}

	for name, at := range map[string]string{
		"unverifiedAccountsAt":  cfg.Sweeps.UnverifiedAccountsAt,
		"orphanMessagesAt":      cfg.Sweeps.OrphanMessagesAt,
		"orphanNotificationsAt": cfg.Sweeps.OrphanNotificationsAt,
	} {
		if _, err := time.Parse("15:04", at); err != nil {
			return errors.Wrapf(err, "invalid sweeps.%s %q", name, at)
		}
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
