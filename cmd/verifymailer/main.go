package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/cowryhub/cowry-backend/internal/domain/contract"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/config"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/external_services"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/logger"
)

// verifymailer is a small sidecar that delivers one-time verification
// codes by email. It is kept separate from the API process so SMTP
// credentials never need to reach the main deployment.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := config.NewConfig()

	appLogger, err := logger.NewZapLogger(true)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	var sender contract.IMailSender
	if cfg.SMTPHost != "" {
		sender = external_services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		appLogger.Warnf("EMAIL_HOST not set, verification codes will be logged instead of sent")
		sender = external_services.NewNoopMailer(appLogger)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/send-code", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			To   string `json:"to"`
			Code string `json:"code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.To == "" || req.Code == "" {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"message": "body must include to and code",
			})
			return
		}

		body := "Your verification code is: " + req.Code + "\nIt expires in 10 minutes."
		if err := sender.Send(r.Context(), req.To, "Your verification code", body); err != nil {
			appLogger.Errorf("Failed to send verification code to %s: %v", req.To, err)
			writeJSON(w, http.StatusBadGateway, map[string]interface{}{
				"success": false,
				"message": "failed to send verification code",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
	})

	port := getEnv("VERIFYMAILER_PORT", "8090")
	appLogger.Infof("Starting verification mailer on port %s", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		appLogger.Fatalf("Failed to start verification mailer: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
