package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/va6996/tinyagent/agent"
	"github.com/va6996/tinyagent/config"
	logcontext "github.com/va6996/tinyagent/context"
	"github.com/va6996/tinyagent/log"
	"github.com/va6996/tinyagent/tools"
)

type chatRequest struct {
	Message string `json:"message"`
	// Timezone overrides the configured default zone for this turn.
	Timezone string `json:"timezone,omitempty"`
}

type chatResponse struct {
	Reply       string                 `json:"reply"`
	Invocations []agent.ToolInvocation `json:"invocations,omitempty"`
}

// ChatServer exposes the agent over HTTP.
type ChatServer struct {
	agent       *agent.Agent
	defaultZone string
	showTrace   bool
}

func (s *ChatServer) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	requestID := logcontext.NewRequestID()
	ctx := logcontext.WithRequestID(r.Context(), requestID)

	log.Infof(ctx, "received chat message: %q", req.Message)

	zone := req.Timezone
	if zone == "" {
		zone = s.defaultZone
	}

	reply := s.agent.Run(ctx, req.Message, zone)

	resp := chatResponse{Reply: reply.Text}
	if s.showTrace {
		resp.Invocations = reply.Invocations
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf(ctx, "failed to write response: %v", err)
	}
}

// newRegistry wires the three tools the dispatcher knows about.
func newRegistry() *tools.Registry {
	registry := tools.NewRegistry()
	tools.NewClockTool(registry)
	tools.NewCalculatorTool(registry)
	tools.NewPlannerTool(registry)
	return registry
}

func main() {
	log.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C (SIGINT)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT)
	go func() {
		<-sigChan
		log.Info(context.Background(), "shutting down on interrupt")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}
	log.SetLevel(cfg.Log.Level)

	server := &ChatServer{
		agent:       agent.New(newRegistry()),
		defaultZone: cfg.Agent.DefaultTimezone,
		showTrace:   cfg.Agent.ShowToolTrace,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", server.handleChat)

	// Simple CORS middleware
	corsHandler := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			h.ServeHTTP(w, r)
		})
	}

	// h2c for HTTP/2 without TLS (dev and internal services)
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: h2c.NewHandler(corsHandler(mux), &http2.Server{}),
	}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	log.Infof(context.Background(), "starting server on port %s (default zone %s)", cfg.Server.Port, cfg.Agent.DefaultTimezone)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf(context.Background(), "Server failed: %v", err)
	}
}
