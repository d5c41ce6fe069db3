// Package testcluster starts the backing services of the telemetry server in
// Docker for integration tests.
package testcluster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

type Service int

const (
	Postgres Service = 1 << iota
	Azurite
	Elasticsearch
)

// AzuriteConnectionString is the well known development account of azurite.
const AzuriteConnectionString = "DefaultEndpointsProtocol=http;AccountName=devstoreaccount1;AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;BlobEndpoint=http://%s/devstoreaccount1;"

type Cluster struct {
	pool                   *dockertest.Pool
	postgresContainer      *dockertest.Resource
	azuriteContainer       *dockertest.Resource
	elasticsearchContainer *dockertest.Resource
}

func (cluster *Cluster) GetDBUrl() string {
	databaseHostAndPort := cluster.postgresContainer.GetHostPort("5432/tcp")
	return fmt.Sprintf("postgres://postgres:password@%s/telemetry?sslmode=disable", databaseHostAndPort)
}

func (cluster *Cluster) GetDBPort() uint16 {
	port, _ := strconv.ParseUint(cluster.postgresContainer.GetPort("5432/tcp"), 0, 16)
	return uint16(port)
}

func (cluster *Cluster) GetAzuriteConnectionString() string {
	return fmt.Sprintf(AzuriteConnectionString, cluster.azuriteContainer.GetHostPort("10000/tcp"))
}

func (cluster *Cluster) GetElasticsearchEndpoint() string {
	return "http://" + cluster.elasticsearchContainer.GetHostPort("9200/tcp")
}

func (cluster *Cluster) Purge() {
	for _, container := range []*dockertest.Resource{
		cluster.postgresContainer,
		cluster.azuriteContainer,
		cluster.elasticsearchContainer,
	} {
		if container == nil {
			continue
		}
		if err := cluster.pool.Purge(container); err != nil {
			fmt.Printf("could not purge %s: %s", container.Container.Name, err)
		}
	}
}

// SpawnCluster starts the given services and waits until they accept
// connections. Postgres is migrated to the latest schema. An error is
// returned when Docker is unreachable.
func SpawnCluster(services Service) (*Cluster, error) {
	pool, err := createDockerPool()
	if err != nil {
		return nil, err
	}
	cluster := &Cluster{pool: pool}

	if services&Postgres != 0 {
		if err := cluster.startPostgres(); err != nil {
			cluster.Purge()
			return nil, err
		}
	}

	if services&Elasticsearch != 0 {
		if err := cluster.startElasticsearch(); err != nil {
			cluster.Purge()
			return nil, err
		}
	}

	if services&Azurite != 0 {
		if err := cluster.startAzurite(); err != nil {
			cluster.Purge()
			return nil, err
		}
	}

	return cluster, nil
}

func createDockerPool() (*dockertest.Pool, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not construct docker pool: %w", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		return nil, fmt.Errorf("could not connect to Docker: %w", err)
	}

	pool.MaxWait = 120 * time.Second
	return pool, nil
}

func run(pool *dockertest.Pool, options *dockertest.RunOptions) (*dockertest.Resource, error) {
	container, err := pool.RunWithOptions(options, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start %s: %w", options.Repository, err)
	}

	container.Expire(120)
	return container, nil
}

func (cluster *Cluster) startPostgres() error {
	container, err := run(cluster.pool, &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine3.18",
		Env: []string{
			"POSTGRES_PASSWORD=password",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=telemetry",
			"listen_addresses = '*'",
		},
	})
	if err != nil {
		return err
	}
	cluster.postgresContainer = container

	db, err := sql.Open("pgx", cluster.GetDBUrl())
	if err != nil {
		return fmt.Errorf("error open db connection: %w", err)
	}
	defer db.Close()

	if err := cluster.pool.Retry(db.Ping); err != nil {
		return fmt.Errorf("postgres container not initialized: %w", err)
	}
	return startMigration(db)
}

func (cluster *Cluster) startAzurite() error {
	container, err := run(cluster.pool, &dockertest.RunOptions{
		Repository: "mcr.microsoft.com/azure-storage/azurite",
		Tag:        "latest",
		Cmd:        []string{"azurite-blob", "--blobHost", "0.0.0.0"},
	})
	if err != nil {
		return err
	}
	cluster.azuriteContainer = container

	address := container.GetHostPort("10000/tcp")
	if err := cluster.pool.Retry(func() error {
		conn, err := net.Dial("tcp", address)
		if err != nil {
			return err
		}
		return conn.Close()
	}); err != nil {
		return fmt.Errorf("azurite container not initialized: %w", err)
	}
	return nil
}

func (cluster *Cluster) startElasticsearch() error {
	container, err := run(cluster.pool, &dockertest.RunOptions{
		Repository: "docker.elastic.co/elasticsearch/elasticsearch",
		Tag:        "8.13.4",
		Env: []string{
			"xpack.security.enabled=false",
			"discovery.type=single-node",
			"ES_JAVA_OPTS=-Xms512m -Xmx512m",
		},
	})
	if err != nil {
		return err
	}
	cluster.elasticsearchContainer = container

	searchClient, err := elasticsearch.NewTypedClient(elasticsearch.Config{
		Addresses: []string{cluster.GetElasticsearchEndpoint()},
	})
	if err != nil {
		return err
	}

	if err := cluster.pool.Retry(func() error {
		isReady, err := searchClient.Ping().Do(context.Background())
		if err != nil {
			return err
		}
		if !isReady {
			return errors.New("elasticsearch is not ready yet")
		}
		return nil
	}); err != nil {
		return fmt.Errorf("elasticsearch container not initialized: %w", err)
	}
	return nil
}

func migrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "db", "migrations")
}

func startMigration(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not init driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsDir(),
		"pgx", driver)
	if err != nil {
		return fmt.Errorf("could not apply the migration: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply the migration: %w", err)
	}
	return nil
}
