package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/scoutgen/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Given no environment overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the defaults should apply", func() {
			So(err, ShouldBeNil)
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.LogFormat, ShouldEqual, "text")
			So(cfg.Region, ShouldEqual, "england")
			So(cfg.DefaultRegion, ShouldEqual, "england")
			So(cfg.BatchSize, ShouldEqual, 25)
			So(cfg.Workers, ShouldEqual, 4)
			So(cfg.NameRetries, ShouldEqual, 5)
			So(cfg.DBPath, ShouldBeEmpty)
		})
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SCOUTGEN_REGION", "brazil")
	t.Setenv("SCOUTGEN_BATCH_SIZE", "40")
	t.Setenv("SCOUTGEN_LOG_LEVEL", "debug")
	t.Setenv("SCOUTGEN_DB_PATH", "/tmp/players.db")

	Convey("Given SCOUTGEN_ environment variables", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the overrides should win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Region, ShouldEqual, "brazil")
			So(cfg.BatchSize, ShouldEqual, 40)
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.DBPath, ShouldEqual, "/tmp/players.db")
		})

		Convey("Then untouched fields should keep their defaults", func() {
			So(cfg.Workers, ShouldEqual, 4)
			So(cfg.DefaultRegion, ShouldEqual, "england")
		})
	})
}

func TestFileLayer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("region: italy\nworkers: 2\nscout_skills:\n  talent_spotting: 7\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCOUTGEN_CONFIG", path)

	Convey("Given a YAML config file", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then file values should override defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Region, ShouldEqual, "italy")
			So(cfg.Workers, ShouldEqual, 2)
			So(cfg.ScoutSkills["talent_spotting"], ShouldEqual, 7)
		})
	})
}

func TestEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("region: italy\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCOUTGEN_CONFIG", path)
	t.Setenv("SCOUTGEN_REGION", "argentina")

	Convey("Given both a file and an env override", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the env layer should win", func() {
			So(err, ShouldBeNil)
			So(cfg.Region, ShouldEqual, "argentina")
		})
	})
}

func TestValidation(t *testing.T) {
	Convey("Given an empty region", t, func() {
		t.Setenv("SCOUTGEN_REGION", "   ")
		_, err := config.Load(context.Background())

		Convey("Then loading should fail with the sentinel error", func() {
			So(err, ShouldEqual, config.ErrEmptyRegion)
		})
	})

	Convey("Given a non-positive batch size", t, func() {
		t.Setenv("SCOUTGEN_REGION", "england")
		t.Setenv("SCOUTGEN_BATCH_SIZE", "0")
		_, err := config.Load(context.Background())

		Convey("Then loading should fail with the sentinel error", func() {
			So(err, ShouldEqual, config.ErrInvalidBatchSize)
		})
	})

	Convey("Given non-positive workers", t, func() {
		t.Setenv("SCOUTGEN_BATCH_SIZE", "25")
		t.Setenv("SCOUTGEN_WORKERS", "-1")
		_, err := config.Load(context.Background())

		Convey("Then loading should fail with the sentinel error", func() {
			So(err, ShouldEqual, config.ErrInvalidWorkers)
		})
	})
}
