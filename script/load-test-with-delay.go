package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// scenario is one kind of ledger write the run sends
type scenario struct {
	name string
	path string
	// sign is +1 for income and -1 for expense
	sign   int64
	amount string
	body   func(amount string) any
}

type manualEntry struct {
	Type          string `json:"type"`
	Category      string `json:"category"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	Description   string `json:"description"`
}

type paymentEvent struct {
	DocumentID    string `json:"documentId"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	EventID       string `json:"eventId"`
}

type summaryView struct {
	Current struct {
		Total string `json:"total"`
	} `json:"current"`
	AllTime struct {
		Count int64 `json:"count"`
	} `json:"allTime"`
	Reconciliation struct {
		Balanced bool `json:"balanced"`
	} `json:"reconciliation"`
}

var methods = []string{"cash", "card", "transfer"}

func manual(txType, category string) func(string) any {
	return func(amount string) any {
		return manualEntry{
			Type:          txType,
			Category:      category,
			Amount:        amount,
			PaymentMethod: methods[rand.Intn(len(methods))],
			Description:   "load test",
		}
	}
}

func event(amount string) any {
	return paymentEvent{
		DocumentID:    uuid.NewString(),
		Amount:        amount,
		PaymentMethod: methods[rand.Intn(len(methods))],
		EventID:       uuid.NewString(),
	}
}

// outcome is what one post produced
type outcome struct {
	tenant   string
	scenario *scenario
	latency  time.Duration
	err      error
}

// tally accumulates outcomes. posted holds the net amount each tenant's
// successful posts should have moved its total by.
type tally struct {
	mu        sync.Mutex
	planned   int
	ok        int
	latencies map[string][]time.Duration
	failures  map[string]int
	posted    map[string]decimal.Decimal
}

func newTally(planned int) *tally {
	return &tally{
		planned:   planned,
		latencies: make(map[string][]time.Duration),
		failures:  make(map[string]int),
		posted:    make(map[string]decimal.Decimal),
	}
}

func (t *tally) record(o outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.latencies[o.scenario.name] = append(t.latencies[o.scenario.name], o.latency)
	if o.err != nil {
		t.failures[o.err.Error()]++
		return
	}
	t.ok++
	amount := decimal.RequireFromString(o.scenario.amount).Mul(decimal.NewFromInt(o.scenario.sign))
	t.posted[o.tenant] = t.posted[o.tenant].Add(amount)
}

func (t *tally) done() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.ok
	for _, c := range t.failures {
		n += c
	}
	return n
}

func main() {
	workers := flag.Int("c", 5, "concurrent posting goroutines")
	requests := flag.Int("n", 100, "number of posts to send")
	tenantList := flag.String("t", "agency-1,agency-2", "comma separated tenants to spread posts over")
	baseURL := flag.String("url", "http://localhost:8080", "ledger API base URL")
	actor := flag.String("user", "load-test", "X-User-ID recorded as the author of each entry")
	delay := flag.Duration("delay", 100*time.Millisecond, "pause before each post")
	flag.Parse()

	var tenants []string
	for _, tenant := range strings.Split(*tenantList, ",") {
		if tenant = strings.TrimSpace(tenant); tenant != "" {
			tenants = append(tenants, tenant)
		}
	}
	if len(tenants) == 0 {
		tenants = []string{"default"}
	}

	scenarios := []*scenario{
		{name: "deposit", path: "/api/v1/ledger/transactions", sign: 1, amount: "25.00", body: manual("income", "deposit")},
		{name: "expense", path: "/api/v1/ledger/transactions", sign: -1, amount: "12.50", body: manual("expense", "expense")},
		{name: "salary", path: "/api/v1/ledger/transactions", sign: -1, amount: "40.00", body: manual("expense", "salary")},
		{name: "appointment", path: "/api/v1/ledger/events/appointment-payments", sign: 1, amount: "60.00", body: event},
		{name: "invoice", path: "/api/v1/ledger/events/invoice-payments", sign: 1, amount: "35.75", body: event},
		{name: "receipt", path: "/api/v1/ledger/events/receipt-payments", sign: 1, amount: "9.99", body: event},
	}

	client := &http.Client{Timeout: 10 * time.Second}

	before := make(map[string]decimal.Decimal, len(tenants))
	for _, tenant := range tenants {
		s, err := fetchSummary(client, *baseURL, tenant)
		if err != nil {
			fmt.Printf("cannot read opening summary of %s: %v\n", tenant, err)
			return
		}
		before[tenant] = decimal.RequireFromString(s.Current.Total)
	}

	fmt.Printf("%d posts over %d workers to %v, %v apart\n", *requests, *workers, tenants, *delay)

	t := newTally(*requests)
	jobs := make(chan struct{})
	var wg sync.WaitGroup
	for range *workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				time.Sleep(*delay)
				tenant := tenants[rand.Intn(len(tenants))]
				sc := scenarios[rand.Intn(len(scenarios))]
				t.record(post(client, *baseURL, *actor, tenant, sc))
			}
		}()
	}

	stop := make(chan struct{})
	go func() {
		tick := time.NewTicker(time.Second)
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				fmt.Printf("  %d/%d\n", t.done(), t.planned)
			case <-stop:
				return
			}
		}
	}()

	started := time.Now()
	for range *requests {
		jobs <- struct{}{}
	}
	close(jobs)
	wg.Wait()
	close(stop)
	elapsed := time.Since(started)

	report(t, elapsed)
	verify(client, *baseURL, tenants, before, t.posted)
}

func post(client *http.Client, baseURL, actor, tenant string, sc *scenario) outcome {
	o := outcome{tenant: tenant, scenario: sc}

	payload, err := json.Marshal(sc.body(sc.amount))
	if err != nil {
		o.err = err
		return o
	}
	req, err := http.NewRequest(http.MethodPost, baseURL+sc.path, bytes.NewReader(payload))
	if err != nil {
		o.err = err
		return o
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-ID", tenant)
	req.Header.Set("X-User-ID", actor)

	began := time.Now()
	resp, err := client.Do(req)
	o.latency = time.Since(began)
	if err != nil {
		o.err = err
		return o
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		o.err = fmt.Errorf("status %d", resp.StatusCode)
	}
	return o
}

func report(t *tally, elapsed time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	failed := t.planned - t.ok
	fmt.Println("\n== posting ==")
	fmt.Printf("posted %d of %d in %.2fs (%.1f/s), %d failed\n",
		t.ok, t.planned, elapsed.Seconds(), float64(t.ok)/elapsed.Seconds(), failed)

	names := make([]string, 0, len(t.latencies))
	for name := range t.latencies {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Printf("\n%-12s %6s %10s %10s %10s\n", "scenario", "count", "p50", "p95", "max")
	var all []time.Duration
	for _, name := range names {
		l := slices.Clone(t.latencies[name])
		slices.Sort(l)
		all = append(all, l...)
		fmt.Printf("%-12s %6d %10v %10v %10v\n", name, len(l), quantile(l, 50), quantile(l, 95), l[len(l)-1])
	}
	if len(all) > 0 {
		slices.Sort(all)
		fmt.Printf("%-12s %6d %10v %10v %10v\n", "all", len(all), quantile(all, 50), quantile(all, 95), all[len(all)-1])
	}

	if failed > 0 {
		fmt.Println("\n== failures ==")
		for msg, n := range t.failures {
			fmt.Printf("%5d  %s\n", n, msg)
		}
	}
}

func quantile(sorted []time.Duration, p int) time.Duration {
	return sorted[(len(sorted)-1)*p/100]
}

// verify checks each tenant's total moved by exactly what the run posted and
// that the ledger still reconciles. Other writers during the run show up as a mismatch.
func verify(client *http.Client, baseURL string, tenants []string, before, posted map[string]decimal.Decimal) {
	fmt.Println("\n== reconciliation ==")
	for _, tenant := range tenants {
		s, err := fetchSummary(client, baseURL, tenant)
		if err != nil {
			fmt.Printf("%-16s %v\n", tenant, err)
			continue
		}

		moved := decimal.RequireFromString(s.Current.Total).Sub(before[tenant])
		state := "balanced"
		switch {
		case !s.Reconciliation.Balanced:
			state = "OUT OF BALANCE"
		case !moved.Equal(posted[tenant]):
			state = fmt.Sprintf("total moved %s, expected %s", moved.StringFixed(2), posted[tenant].StringFixed(2))
		}
		fmt.Printf("%-16s %s (total %s, %d entries)\n", tenant, state, s.Current.Total, s.AllTime.Count)
	}
}

func fetchSummary(client *http.Client, baseURL, tenant string) (*summaryView, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/ledger/summary", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Tenant-ID", tenant)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	var s summaryView
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &s, nil
}
