package alerts

import (
	"log"
	"os"
	"strconv"

	"github.com/HavenWatch/HW-Backend/internal/db"
)

// ActiveDispatcher delivers raised alarms. Initialized in Init(): SMTP when
// configured, otherwise the log fallback.
var ActiveDispatcher Dispatcher

func Init() {
	if err := db.EnsureSchema(db.DB, "alerts"); err != nil {
		log.Fatal("Failed to ensure schema alerts: ", err)
	}

	if err := db.DB.AutoMigrate(&AlarmEvent{}); err != nil {
		log.Fatal("Failed to auto-migrate alerts tables: ", err)
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		ActiveDispatcher = LogDispatcher{}
		log.Println("[alerts] SMTP not configured; alarms will be logged only")
	} else {
		port := 587
		if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
			if n, err := strconv.Atoi(portStr); err == nil {
				port = n
			} else {
				log.Printf("[alerts] WARNING: invalid SMTP_PORT %q, using %d", portStr, port)
			}
		}
		ActiveDispatcher = NewEmailDispatcher(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD"))
		log.Printf("[alerts] SMTP dispatcher configured for %s:%d", host, port)
	}

	log.Println("Alerts module initialized")
}
