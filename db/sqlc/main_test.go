package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Drolfothesgnir/sillypost/util"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

var testStore Store

func TestMain(m *testing.M) {
	config, err := util.LoadConfig("../../")
	if err != nil {
		log.Warn().Err(err).Msg("cannot read the config, database tests are skipped")
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	connPool, err := pgxpool.New(ctx, config.DBSource)
	if err == nil {
		err = connPool.Ping(ctx)
	}

	if err != nil {
		log.Warn().Err(err).Msg("cannot connect to the database, database tests are skipped")
	} else {
		testStore = NewStore(connPool)
	}

	os.Exit(m.Run())
}

// requireStore skips the test when no database is available.
func requireStore(t *testing.T) {
	t.Helper()
	if testStore == nil {
		t.Skip("database is not available")
	}
}
