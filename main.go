package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Suyogg2003/Employee-task-manager/config"
	"github.com/Suyogg2003/Employee-task-manager/handlers"
	"github.com/Suyogg2003/Employee-task-manager/repositories"
	"github.com/Suyogg2003/Employee-task-manager/services"

	gorillaHandlers "github.com/gorilla/handlers"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func main() {
	cfg := config.GetConfig()

	ctx := context.Background()
	exp, err := newExporter(cfg.JaegerAddress)
	if err != nil {
		log.Fatalf("failed to initialize exporter: %v", err)
	}
	tp := newTraceProvider(exp)
	// Handle shutdown properly so nothing leaks.
	defer func() { _ = tp.Shutdown(ctx) }()
	otel.SetTracerProvider(tp)
	tracer := tp.Tracer("task-manager")
	otel.SetTextMapPropagator(propagation.TraceContext{})

	timeoutContext, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	storeLogger := log.New(os.Stdout, "[task-store] ", log.LstdFlags)
	userLogger := log.New(os.Stdout, "[user-store] ", log.LstdFlags)
	notificationLogger := log.New(os.Stdout, "[notification-store] ", log.LstdFlags)

	taskRepository, err := repositories.NewTaskRepo(timeoutContext, cfg.MongoURI, storeLogger, tracer)
	handleErr(err)
	defer taskRepository.Disconnect(context.Background())
	taskRepository.Ping()

	userRepository, err := repositories.NewUserRepo(timeoutContext, cfg.MongoURI, userLogger, tracer)
	handleErr(err)
	defer userRepository.Disconnect(context.Background())

	notificationRepository, err := repositories.NewNotificationRepo(cfg.CassandraAddress, notificationLogger)
	handleErr(err)
	defer notificationRepository.Close()

	notificationService := services.NewNotificationService(notificationRepository, notificationLogger, tracer)
	authService := services.NewAuthService(userRepository, []byte(cfg.JWTSecret), tracer)
	userService := services.NewUserService(userRepository, tracer)
	taskService := services.NewTaskService(taskRepository, notificationService, tracer)

	authHandler := handlers.NewAuthHandler(authService, tracer)
	userHandler := handlers.NewUserHandler(userService, authService, tracer)
	taskHandler := handlers.NewTaskHandler(taskService, tracer)
	notificationHandler := handlers.NewNotificationHandler(notificationService, tracer)

	authMiddleware := handlers.NewAuthMiddleware(authService, handlers.DefaultAccessTable())
	router := handlers.NewRouter(authHandler, userHandler, taskHandler, notificationHandler, authMiddleware)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CorsOrigins),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillaHandlers.AllowCredentials(),
	)

	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     cors(router),
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		log.Println("Server listening on port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on :%s: %v\n", cfg.Port, err)
		}
	}()

	// Set up signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, os.Kill)

	sig := <-sigCh
	log.Println("Received terminate, graceful shutdown", sig)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Cannot gracefully shutdown:", err)
	}
	log.Println("Server stopped")
}

// handleErr is a helper function for error handling
func handleErr(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

func newExporter(address string) (*jaeger.Exporter, error) {
	return jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(address)))
}

func newTraceProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("task-manager"),
		),
	)
	if err != nil {
		panic(err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
}
