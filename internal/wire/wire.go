package wire

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"cinenyc-booking/internal/adaptor"
	"cinenyc-booking/internal/data/catalog"
	"cinenyc-booking/internal/data/repository"
	"cinenyc-booking/internal/payment"
	"cinenyc-booking/internal/usecase"
	"cinenyc-booking/pkg/middleware"
	"cinenyc-booking/pkg/utils"
)

// App holds the wired application.
type App struct {
	Router *chi.Mux

	genaiClient *genai.Client
}

// Wiring initializes all dependencies from config down to the router.
func Wiring(
	ctx context.Context,
	cat *catalog.Catalog,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) (*App, error) {
	providers := payment.NewProviders(config.Payment, logger)

	var (
		genaiClient *genai.Client
		adviceModel *genai.GenerativeModel
		tagModel    *genai.GenerativeModel
	)
	if config.Assistant.APIKey != "" {
		client, err := genai.NewClient(ctx, option.WithAPIKey(config.Assistant.APIKey))
		if err != nil {
			return nil, fmt.Errorf("init assistant client: %w", err)
		}
		genaiClient = client

		adviceModel = client.GenerativeModel(config.Assistant.Model)

		tagModel = client.GenerativeModel(config.Assistant.Model)
		tagModel.ResponseMIMEType = "application/json"
		tagModel.ResponseSchema = &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"tag": {Type: genai.TypeString},
			},
			Required: []string{"tag"},
		}
	} else {
		logger.Warn("Assistant disabled, GEMINI_API_KEY not set")
	}

	service := usecase.NewService(cat, providers, repo, adviceModel, tagModel, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router:      router,
		genaiClient: genaiClient,
	}, nil
}

// Close releases clients held by the app.
func (a *App) Close() error {
	if a.genaiClient != nil {
		return a.genaiClient.Close()
	}
	return nil
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireCatalog(r, handler.Catalog)
	wireBooking(r, handler.Booking)
	wirePayment(r, handler.Payment)
	wireAssistant(r, handler.Assistant)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
