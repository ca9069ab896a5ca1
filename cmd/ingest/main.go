package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/HavenWatch/HW-Backend/internal/alerts"
	"github.com/HavenWatch/HW-Backend/internal/auth"
	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/fences"
	"github.com/HavenWatch/HW-Backend/internal/residents"
	"github.com/HavenWatch/HW-Backend/internal/staffing"
	"github.com/HavenWatch/HW-Backend/internal/tracking"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
)

// positionMessage is the JSON payload the device gateway publishes for each
// wearable tag report.
type positionMessage struct {
	SubjectID string  `json:"subject_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp string  `json:"timestamp,omitempty"` // RFC3339, defaults to now
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	auth.Init()
	fences.Init()
	staffing.Init()
	residents.Init()
	alerts.Init()
	tracking.Init()

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	topic := os.Getenv("KAFKA_POSITIONS_TOPIC")
	if topic == "" {
		topic = "position-pings"
	}
	groupID := os.Getenv("KAFKA_GROUP_ID")
	if groupID == "" {
		groupID = "hw-ingest"
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(brokers, ","),
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("[ingest] consuming %s from %s as group %s", topic, brokers, groupID)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[ingest] shutting down")
				return
			}
			log.Printf("[ingest] read error: %v", err)
			continue
		}

		var ping positionMessage
		if err := json.Unmarshal(msg.Value, &ping); err != nil {
			log.Printf("[ingest] dropping malformed message at offset %d: %v", msg.Offset, err)
			continue
		}

		at := time.Time{}
		if ping.Timestamp != "" {
			parsed, err := time.Parse(time.RFC3339, ping.Timestamp)
			if err != nil {
				log.Printf("[ingest] bad timestamp for subject %s, using now: %v", ping.SubjectID, err)
			} else {
				at = parsed
			}
		}

		result, err := tracking.ActiveDetector.ProcessPosition(ctx, ping.SubjectID, ping.Lat, ping.Lng, at)
		if err != nil {
			log.Printf("[ingest] process failed for subject %s: %v", ping.SubjectID, err)
			continue
		}
		if result.AlarmKind != "" {
			log.Printf("[ingest] alarm %s for subject %s (notified %d staff)", result.AlarmKind, result.SubjectID, len(result.Notified))
		}
	}
}
