package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reflect-lab/stella/pkg/domain/interfaces"
)

// UseCase is the full application surface the server exposes.
type UseCase interface {
	interfaces.RecordUsecases
	interfaces.InsightUsecases
	interfaces.ConstellationUsecases
	interfaces.DraftUsecases
	interfaces.TransferUsecases
}

type Server struct {
	router *chi.Mux
}

func New(uc UseCase) *Server {
	r := chi.NewRouter()

	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/records", func(r chi.Router) {
			r.Get("/{dataset}", listRecordsHandler(uc))
			r.Post("/{dataset}", createRecordHandler(uc))
		})

		r.Route("/insights", func(r chi.Router) {
			r.Get("/overview", overviewHandler(uc))
			r.Get("/breakdown", breakdownHandler(uc))
			r.Get("/ranking", rankingHandler(uc))
			r.Get("/keywords", keywordsHandler(uc))
			r.Get("/report", reportHandler(uc))
		})

		r.Get("/constellation/{activityID}", constellationHandler(uc))

		r.Route("/drafts", func(r chi.Router) {
			r.Get("/materials", draftMaterialsHandler(uc))
			r.Post("/evidence", composeEvidenceHandler(uc))
			r.Post("/answers", saveAnswerHandler(uc))
		})

		r.Route("/export", func(r chi.Router) {
			r.Get("/{dataset}.csv", exportCSVHandler(uc))
			r.Post("/backup", backupHandler(uc))
		})

		r.Post("/import", importHandler(uc))
	})

	return &Server{router: r}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
