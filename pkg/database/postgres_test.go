package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/campushub/pkg/config"
)

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "db", Port: 5433, User: "hub", Password: "pw", Name: "campushub"}
	assert.Equal(t, "host=db port=5433 user=hub password=pw dbname=campushub sslmode=disable", DSN(cfg))

	cfg.SSLMode = "require"
	assert.Contains(t, DSN(cfg), "sslmode=require")
}
