package router

import (
	"context"
	"database/sql"
	"net/http"

	_ "cat-gallery/docs"
	mem "cat-gallery/internal/adapters/storage/memory"
	pg "cat-gallery/internal/adapters/storage/postgres"
	"cat-gallery/internal/domain/cats"
	"cat-gallery/internal/gallery"
	"cat-gallery/internal/middleware"
	"cat-gallery/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => no-op

	// Opcional: si viene, el catálogo se lee de Postgres. Si no, el compilado.
	DB *sql.DB

	// Opcional: fuente explícita (tests). Tiene prioridad sobre DB.
	Repository cats.Repository

	// Opcional: directorio de imágenes servido en /img/.
	AssetsDir string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	catalog := loadCatalog(context.Background(), opts, log)
	svc := cats.NewService(catalog)

	// Rutas por módulo
	cats.RegisterRoutes(r, svc)

	page, err := gallery.New(svc, log)
	if err != nil {
		// templates embebidos: solo falla si el binario está roto
		panic("router: " + err.Error())
	}
	page.RegisterRoutes(r)

	if opts.AssetsDir != "" {
		r.Handle("/img/*", http.StripPrefix("/img/", http.FileServer(http.Dir(opts.AssetsDir))))
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

// loadCatalog arma el snapshot una sola vez. Si la fuente configurada falla,
// se usa el catálogo compilado: la galería nunca arranca vacía por un error.
func loadCatalog(ctx context.Context, opts Options, log logger.Logger) *cats.Catalog {
	var (
		repo   cats.Repository
		source string
	)

	switch {
	case opts.Repository != nil:
		repo, source = opts.Repository, "custom"
	case opts.DB != nil:
		repo, source = pg.NewCatsRepo(opts.DB), "postgres"
	default:
		repo, source = mem.NewCatRepo(), "memory"
	}

	catalog, err := catalogFrom(ctx, repo)
	if err != nil {
		log.Warn("catalog source failed, using built-in cats", map[string]any{
			"source": source,
			"err":    err,
		})
		source = "memory"
		catalog, err = catalogFrom(ctx, mem.NewCatRepo())
		if err != nil {
			panic("router: built-in catalog: " + err.Error())
		}
	}

	log.Info("catalog loaded", map[string]any{"source": source, "cats": catalog.Len()})
	return catalog
}

func catalogFrom(ctx context.Context, repo cats.Repository) (*cats.Catalog, error) {
	items, err := repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return cats.NewCatalog(items)
}
