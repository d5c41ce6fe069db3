package configuration

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/kelseyhightower/envconfig"
)

type Settings struct {
	Database    DatabaseSettings    `yaml:"database"`
	Application ApplicationSettings `yaml:"application"`
	Azure       AzureSettings       `yaml:"azure"`
}

type DatabaseSettings struct {
	Username   string `yaml:"username" envconfig:"DB_USERNAME"`
	Password   string `yaml:"password" envconfig:"DB_PASSWORD"`
	Host       string `yaml:"host" envconfig:"DB_HOST"`
	Port       uint16 `yaml:"port" envconfig:"DB_PORT"`
	DbName     string `yaml:"db_name" envconfig:"DB_NAME"`
	RequireSsl bool   `yaml:"require_ssl"`
}

type ApplicationSettings struct {
	Port                   uint16   `yaml:"port" envconfig:"PORT"`
	SigningKey             string   `yaml:"signing_key" envconfig:"SIGNING_KEY"`
	TokenExpirationSeconds uint16   `yaml:"token_expiration_seconds"`
	AllowedOrigins         []string `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	KafkaEndpoint          string   `yaml:"kafka_endpoint" envconfig:"KAFKA_ENDPOINT"`
	KafkaTopic             string   `yaml:"kafka_topic" envconfig:"KAFKA_TOPIC"`
	ElasticsearchEndpoint  string   `yaml:"elasticsearch_endpoint" envconfig:"ELASTICSEARCH_ENDPOINT"`
	ElasticsearchIndex     string   `yaml:"elasticsearch_index" envconfig:"ELASTICSEARCH_INDEX"`
	// StrictDecode rejects malformed telemetry blobs instead of decoding them leniently.
	StrictDecode bool `yaml:"strict_decode" envconfig:"STRICT_DECODE"`
}

type AzureSettings struct {
	BlobConnectionString string `yaml:"blob_connection_string" envconfig:"AZURE_STORAGE_CONNECTION_STRING"`
	BlobStorageEndpoint  string `yaml:"blob_storage_endpoint" envconfig:"AZURE_STORAGE_ENDPOINT"`
	Container            string `yaml:"container" envconfig:"AZURE_STORAGE_CONTAINER"`
}

// ReadConfiguration reads base.yml and <ENVIRONMENT>.yml from dir, then
// applies environment variable overrides.
func ReadConfiguration(dir string) Settings {
	var settings Settings
	readFiles(dir, &settings)
	readEnv(&settings)
	return settings
}

func readFiles(dir string, settings *Settings) {
	readFile(dir, settings, "base")

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "local"
	}

	readFile(dir, settings, environment)
}

func readFile(dir string, settings *Settings, name string) {
	f, err := os.Open(fmt.Sprintf("%s/%s.yml", dir, name))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(settings)
	if err != nil {
		panic(err)
	}
}

func readEnv(settings *Settings) {
	err := envconfig.Process("", settings)
	if err != nil {
		panic(err)
	}
}
