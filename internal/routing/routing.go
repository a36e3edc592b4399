package routing

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"groupstudy/pkg/document"
	"groupstudy/pkg/handlers"
	"groupstudy/pkg/middleware"
	"groupstudy/pkg/session"
	"groupstudy/pkg/user"
)

const (
	assignmentCollection = "allAssignments"
	submissionCollection = "submittedAssignment"
	hexID                = "[a-fA-F0-9]+"
	defaultAddr          = ":5000"
)

func InitRoutes(r *mux.Router, db *sql.DB, mongoDB *mongo.Database, logger *slog.Logger) {

	codec := session.NewCodec(os.Getenv("JWT_SECRET"))

	userService := user.NewService(user.NewMySQLRepo(db))
	authHandler := handlers.NewAuthHandler(codec, userService, logger)

	assignments := handlers.NewDocumentHandler(
		document.NewService(document.NewMongoRepo(mongoDB, assignmentCollection)), logger, "assignment")
	submissions := handlers.NewDocumentHandler(
		document.NewService(document.NewMongoRepo(mongoDB, submissionCollection)), logger, "submission")

	auth := middleware.Auth(codec)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	r.HandleFunc("/", handlers.Liveness).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	/* session routes */
	r.HandleFunc("/jwt", authHandler.IssueToken).Methods("POST")
	r.HandleFunc("/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	/* assignment routes */
	r.HandleFunc("/assignments", assignments.List).Methods("GET")
	r.HandleFunc("/filter", assignments.ListAll).Methods("GET")
	r.HandleFunc("/documentCount", assignments.Count).Methods("GET")
	r.HandleFunc("/assignment", assignments.Create).Methods("POST")
	r.HandleFunc("/assignment/{id:"+hexID+"}", assignments.GetByID).Methods("GET")
	r.HandleFunc("/assignment/{id:"+hexID+"}", assignments.Upsert).Methods("PUT")
	r.HandleFunc("/assignments/{id:"+hexID+"}", assignments.Delete).Methods("DELETE")

	/* submission routes, only the listing is gated behind the session */
	r.Handle("/submitted", auth(http.HandlerFunc(submissions.ListAll))).Methods("GET")
	r.HandleFunc("/submitted", submissions.Create).Methods("POST")
	r.HandleFunc("/submitted/{id:"+hexID+"}", submissions.Upsert).Methods("PUT")
	r.HandleFunc("/submitted/{id:"+hexID+"}", submissions.Delete).Methods("DELETE")
}

func StartServer(r *mux.Router) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	fmt.Println("\n\033[32m", "The server is running on http://localhost"+addr, "\033[0m")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
