package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxDevices int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var deviceTypes = []string{"battery_storage", "solar_pv"}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	deviceIDs := make([]uint, maxDevices)

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			deviceIDs[i] = registerDevice(i)
			fmt.Printf("\rregistered device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(deviceIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*4)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func registerDevice(index int) uint {
	payload := map[string]any{
		"site_id":           1 + index%10,
		"name":              fmt.Sprintf("bench-device-%v", index),
		"type":              deviceTypes[index%len(deviceTypes)],
		"capacity_kw":       rndFloat64(5.0, 100.0, 1),
		"installation_year": 2018 + index%8,
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/devices", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	var device struct {
		ID uint `json:"ID"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&device); err != nil {
		panic(err)
	}
	return device.ID
}

func doAction(deviceID uint) {
	actions := []func(){
		genPostReadingAction(deviceID),
		genComputeHealthAction(deviceID),
		genGenerateAlertsAction(deviceID),
		genGetAlertsAction(deviceID),
	}
	actionNames := []string{
		"PostReading",
		"ComputeHealth",
		"GenerateAlerts",
		"GetAlerts",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], deviceID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPostReadingAction(deviceID uint) func() {
	return func() {
		payload := map[string]any{
			"timestamp":       time.Now().Format(time.RFC3339),
			"state_of_charge": rndFloat64(0.0, 100.0, 2),
			"temperature":     rndFloat64(-10.0, 50.0, 2),
			"power_kw":        rndFloat64(0.0, 100.0, 2),
			"voltage":         rndFloat64(220.0, 480.0, 1),
			"current":         rndFloat64(0.0, 200.0, 1),
		}

		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/devices/%v/readings", httpHostPort, deviceID), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
	}
}

func genComputeHealthAction(deviceID uint) func() {
	return func() {
		resp, err := http.Post(fmt.Sprintf("http://%s/devices/%v/health", httpHostPort, deviceID), "application/json", nil)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genGenerateAlertsAction(deviceID uint) func() {
	return func() {
		resp, err := http.Post(fmt.Sprintf("http://%s/devices/%v/alerts/generate", httpHostPort, deviceID), "application/json", nil)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
	}
}

func genGetAlertsAction(deviceID uint) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/devices/%v/alerts", httpHostPort, deviceID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
