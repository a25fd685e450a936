package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/dto"
)

// TestResult contains metrics for a single transfer request
type TestResult struct {
	StatusCode   int
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests     int
	StatusCounts      map[int]int
	ErrorCounts       map[string]int
	ResponseTimes     []time.Duration
	TotalTime         time.Duration
	TotalResponseTime time.Duration
	Lock              sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 8, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of transfers to attempt")
	accountsStr := flag.String("a", "memberA,memberB,ex", "Comma-separated account IDs to move money between")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	maxAmount := flag.Int64("max", 500, "Largest amount of a single transfer")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	accounts := strings.Split(*accountsStr, ",")
	if len(accounts) < 2 {
		fmt.Println("Need at least two accounts")
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}

	before, err := totalBalance(client, *baseURL, accounts)
	if err != nil {
		fmt.Printf("Could not read opening balances: %v\n", err)
		return
	}

	fmt.Printf("Transferring across %d accounts: %v\n", len(accounts), accounts)
	fmt.Printf("Concurrency: %d goroutines, %d transfers\n", *concurrency, *totalRequests)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		StatusCounts:  make(map[int]int),
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, accounts, *maxAmount, *delayMs, jobs, stats)
		}()
	}
	wg.Wait()
	stats.TotalTime = time.Since(startTime)

	after, err := totalBalance(client, *baseURL, accounts)
	if err != nil {
		fmt.Printf("Could not read closing balances: %v\n", err)
		return
	}

	printResults(stats, before, after)
}

func worker(client *http.Client, baseURL string, accounts []string, maxAmount int64, delayMs int,
	jobs <-chan int, stats *TestStats) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		from := accounts[rand.Intn(len(accounts))]
		to := accounts[rand.Intn(len(accounts))]
		for to == from {
			to = accounts[rand.Intn(len(accounts))]
		}

		result := transfer(client, baseURL, dto.TransferRequest{
			FromAccountID: from,
			ToAccountID:   to,
			Amount:        rand.Int63n(maxAmount) + 1,
		})

		stats.Lock.Lock()
		stats.StatusCounts[result.StatusCode]++
		if result.Error != nil {
			stats.ErrorCounts[result.Error.Error()]++
		}
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		stats.TotalResponseTime += result.ResponseTime
		stats.Lock.Unlock()
	}
}

func transfer(client *http.Client, baseURL string, req dto.TransferRequest) TestResult {
	body, err := json.Marshal(req)
	if err != nil {
		return TestResult{Error: err}
	}

	start := time.Now()
	resp, err := client.Post(baseURL+"/transfers", "application/json", bytes.NewReader(body))
	elapsed := time.Since(start)
	if err != nil {
		return TestResult{ResponseTime: elapsed, Error: err}
	}
	defer resp.Body.Close()

	result := TestResult{StatusCode: resp.StatusCode, ResponseTime: elapsed}
	if resp.StatusCode != http.StatusOK {
		var errResp dto.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&errResp) == nil && errResp.Kind != "" {
			result.Error = fmt.Errorf("%s: %s", errResp.Kind, errResp.Message)
		} else {
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		}
	}
	return result
}

// totalBalance sums the balances of accounts; transfers must never change it
func totalBalance(client *http.Client, baseURL string, accounts []string) (int64, error) {
	var total int64
	for _, id := range accounts {
		resp, err := client.Get(baseURL + "/accounts/" + id)
		if err != nil {
			return 0, err
		}
		var account dto.AccountResponse
		err = json.NewDecoder(resp.Body).Decode(&account)
		resp.Body.Close()
		if err != nil {
			return 0, fmt.Errorf("account %s: %w", id, err)
		}
		if resp.StatusCode != http.StatusOK {
			return 0, fmt.Errorf("account %s: HTTP status code %d", id, resp.StatusCode)
		}
		total += account.Balance
	}
	return total, nil
}

func printResults(stats *TestStats, before, after int64) {
	times := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	percentile := func(p int) time.Duration {
		if len(times) == 0 {
			return 0
		}
		return times[len(times)*p/100]
	}

	var avg time.Duration
	if len(times) > 0 {
		avg = stats.TotalResponseTime / time.Duration(len(times))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Transfers:     %d\n", stats.TotalRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f transfers/s\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- STATUS CODES -----------------")
	codes := make([]int, 0, len(stats.StatusCounts))
	for code := range stats.StatusCounts {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Printf("%-5d: %d\n", code, stats.StatusCounts[code])
	}

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", percentile(50))
	fmt.Printf("P95 Response:        %v\n", percentile(95))
	fmt.Printf("P99 Response:        %v\n", percentile(99))

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- REJECTIONS -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-50s: %d\n", msg, count)
		}
	}

	fmt.Println("\n================= CONSERVATION =================")
	fmt.Printf("Total before: %d, total after: %d\n", before, after)
	if before == after {
		fmt.Println("OK: no money was created or lost")
	} else {
		fmt.Printf("FAIL: totals differ by %d\n", after-before)
	}
}
