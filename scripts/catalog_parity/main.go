// Command catalog_parity renders every routed page on two CampusHub instances
// and reports where their page views differ. It is run against one instance
// on the static fixtures and one on the Postgres catalog after a catalog load.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/campushub/internal/models"
	"github.com/noah-isme/campushub/pkg/middleware/session"
)

type target struct {
	Path string
	Tab  string
}

type comparison struct {
	Target          target
	FixtureStatus   int
	CatalogStatus   int
	StatusMatch     bool
	BodyMatch       bool
	Error           error
	DurationFixture time.Duration
	DurationCatalog time.Duration
}

func main() {
	var (
		fixtureBase string
		catalogBase string
		apiPrefix   string
		tabs        string
		timeout     time.Duration
	)

	flag.StringVar(&fixtureBase, "fixture-base", "http://localhost:8080", "Instance serving the static fixtures")
	flag.StringVar(&catalogBase, "catalog-base", "http://localhost:8081", "Instance serving the Postgres catalog")
	flag.StringVar(&apiPrefix, "api-prefix", "/api/v1", "API prefix of both instances")
	flag.StringVar(&tabs, "tabs", "", "Extra path=tab pairs, comma separated (e.g. /assignments=completed)")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := buildTargets(tabs)
	if err != nil {
		log.Fatalf("invalid tabs: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	var (
		comparisons []comparison
		diffs       int
	)
	for _, t := range targets {
		comp := compareTarget(client, fixtureBase, catalogBase, apiPrefix, t)
		if comp.Error != nil || !comp.StatusMatch || !comp.BodyMatch {
			diffs++
		}
		comparisons = append(comparisons, comp)
	}

	printReport(comparisons)

	fmt.Printf("Pages compared: %d, diffs: %d\n", len(comparisons), diffs)
	if diffs > 0 {
		os.Exit(1)
	}
}

func buildTargets(extra string) ([]target, error) {
	routes := models.RouteTable()
	targets := make([]target, 0, len(routes))
	for _, r := range routes {
		targets = append(targets, target{Path: r.Path})
	}
	if extra == "" {
		return targets, nil
	}
	for _, pair := range strings.Split(extra, ",") {
		path, tab, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || path == "" || tab == "" {
			return nil, fmt.Errorf("expected path=tab, got %q", pair)
		}
		targets = append(targets, target{Path: path, Tab: tab})
	}
	return targets, nil
}

func compareTarget(client *http.Client, fixtureBase, catalogBase, apiPrefix string, tgt target) comparison {
	comp := comparison{Target: tgt}
	// Both sides share one fresh session so the shell state matches.
	sessionID := uuid.NewString()

	fixtureStatus, fixtureBody, fixtureDur, err := fetchPage(client, fixtureBase, apiPrefix, sessionID, tgt)
	if err != nil {
		comp.Error = fmt.Errorf("fixture request failed: %w", err)
		return comp
	}
	catalogStatus, catalogBody, catalogDur, err := fetchPage(client, catalogBase, apiPrefix, sessionID, tgt)
	if err != nil {
		comp.Error = fmt.Errorf("catalog request failed: %w", err)
		return comp
	}

	comp.FixtureStatus = fixtureStatus
	comp.CatalogStatus = catalogStatus
	comp.DurationFixture = fixtureDur
	comp.DurationCatalog = catalogDur
	comp.StatusMatch = fixtureStatus == catalogStatus
	comp.BodyMatch = viewsEqual(fixtureBody, catalogBody)
	return comp
}

func fetchPage(client *http.Client, base, apiPrefix, sessionID string, tgt target) (int, []byte, time.Duration, error) {
	query := url.Values{"path": {tgt.Path}}
	if tgt.Tab != "" {
		query.Set("tab", tgt.Tab)
	}
	endpoint := strings.TrimRight(base, "/") + apiPrefix + "/pages?" + query.Encode()

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set(session.HeaderKey, sessionID)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, time.Since(start), nil
}

// viewsEqual compares the data portion of two page envelopes. Meta carries
// per-instance cache state and is ignored.
func viewsEqual(a, b []byte) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj map[string]interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	delete(aj, "meta")
	delete(bj, "meta")
	return reflect.DeepEqual(aj, bj)
}

func printReport(results []comparison) {
	fmt.Println("Catalog Parity Report")
	fmt.Println("=====================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		label := res.Target.Path
		if res.Target.Tab != "" {
			label += " [" + res.Target.Tab + "]"
		}
		fmt.Printf("[%s] %s\n", status, label)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
			continue
		}
		fmt.Printf("  Fixture: %d (%s) | Catalog: %d (%s)\n", res.FixtureStatus, res.DurationFixture, res.CatalogStatus, res.DurationCatalog)
		fmt.Printf("  Status match: %t | Body match: %t\n", res.StatusMatch, res.BodyMatch)
	}
}
