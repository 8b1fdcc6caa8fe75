package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

type order struct {
	OrderID string `json:"order_id"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base url")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	for {
		ids, err := latestOrderIDs(client, *baseURL)
		if err != nil {
			fmt.Println("Ошибка запроса:", err)
			time.Sleep(time.Second)
			continue
		}

		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() {
				doRequest(client, *baseURL, pickID(ids))
			})
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func latestOrderIDs(client *http.Client, baseURL string) ([]string, error) {
	resp, err := client.Get(baseURL + "/admin/orders?limit=20")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var orders []order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.OrderID)
	}
	return ids, nil
}

// каждый пятый запрос идёт на несуществующий заказ
func pickID(ids []string) string {
	if len(ids) == 0 || rand.Intn(5) == 0 {
		return fmt.Sprintf("missing-%d", rand.Intn(1_000_000))
	}
	return ids[rand.Intn(len(ids))]
}

func doRequest(client *http.Client, baseURL, id string) {
	url := baseURL + "/orders/" + id + "/invoice"
	resp, err := client.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	defer resp.Body.Close()

	n, _ := io.Copy(io.Discard, resp.Body)
	fmt.Println("GET", url, "->", resp.Status, n, "bytes", resp.Header.Get("Content-Disposition"))
}
