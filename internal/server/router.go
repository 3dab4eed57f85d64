package server

import (
	"net/http"

	"puramente/internal/blog"
	cartcontroller "puramente/internal/cart/controller"
	"puramente/internal/contact"
	ordercontroller "puramente/internal/order/controller"
	"puramente/internal/product"
	"puramente/internal/uploads"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter mounts every API route plus the static /uploads tree.
// frontendURL is the single origin allowed by CORS; an empty value
// falls back to allowing any origin, which only makes sense in
// development.
func NewRouter(
	orderCtrl *ordercontroller.OrderController,
	cartCtrl *cartcontroller.CartController,
	productCtrl *product.Controller,
	blogCtrl *blog.Controller,
	contactCtrl *contact.Controller,
	store *uploads.Store,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	origins := []string{"*"}
	if frontendURL != "" {
		origins = []string{frontendURL}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: frontendURL != "",
	}))

	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/submit-order", orderCtrl.SubmitOrder)
		r.Get("/", orderCtrl.ListOrders)
		r.Get("/user/{userId}", orderCtrl.ListOrdersByUser)
		r.Get("/download/{filename}", orderCtrl.DownloadWorkbook)
	})

	r.Route("/api/cart", func(r chi.Router) {
		r.Post("/checkout", cartCtrl.Checkout)
		r.Get("/{userId}", cartCtrl.GetCart)
		r.Post("/{userId}/items", cartCtrl.AddItem)
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", productCtrl.List)
		r.Get("/{id}", productCtrl.Get)
		r.Post("/admin/add", productCtrl.Add)
		r.Put("/admin/{id}", productCtrl.Update)
		r.Delete("/admin/{id}", productCtrl.Delete)
	})

	r.Route("/api/blogs", func(r chi.Router) {
		r.Post("/create", blogCtrl.Create)
		r.Get("/", blogCtrl.List)
		r.Put("/{id}", blogCtrl.Update)
		r.Delete("/{id}", blogCtrl.Delete)
	})

	r.Post("/api/contact/send", contactCtrl.Send)

	fileServer := http.FileServer(http.Dir(store.Dir()))
	r.Handle(uploads.URLPrefix+"/*", http.StripPrefix(uploads.URLPrefix+"/", fileServer))

	return r
}
