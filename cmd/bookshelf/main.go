// Command bookshelf is a demo HTTP server over the rekeystore repository.
// It stores books and their reviews and exposes the cascading rename as
// POST /books/{id}/rename.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/suparena/rekeystore"
	"github.com/suparena/rekeystore/datastore/ddb"
	rkerrors "github.com/suparena/rekeystore/errors"
	"github.com/suparena/rekeystore/registry"
	"github.com/suparena/rekeystore/storagemodels"
)

// Marker types for key-schema registration.
type book struct{}
type review struct{}

func main() {
	configPath := flag.String("config", "bookshelf.yaml", "Path to the YAML configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	client, err := ddb.NewDynamoDBClient(
		os.Getenv("AWS_ACCESS_KEY_ID"),
		os.Getenv("AWS_SECRET_ACCESS_KEY"),
		cfg.AWS.Region,
	)
	if err != nil {
		log.Fatal(err)
	}

	repo, err := ddb.NewRepository(client, ddb.Config{TableName: cfg.Tables.Books})
	if err != nil {
		log.Fatal(err)
	}

	registry.RegisterKeySchema[book](registry.KeySchema{
		TableName:             cfg.Tables.Books,
		PartitionKeyAttribute: "PK",
	})
	registry.RegisterKeySchema[review](registry.KeySchema{
		TableName:             cfg.Tables.Reviews,
		PartitionKeyAttribute: "PK",
		ReferenceAttribute:    cfg.Reference.Attribute,
		ReferenceIndexName:    cfg.Reference.Index,
	})

	manager := rekeystore.NewRepositoryManager()
	if err := rekeystore.Register(manager, cfg.Tables.Books, repo); err != nil {
		log.Fatal(err)
	}

	srv := &server{repo: repo, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /books/{id}", srv.handleGetBook)
	mux.HandleFunc("PUT /books/{id}", srv.handlePutBook)
	mux.HandleFunc("GET /books/{id}/reviews", srv.handleListReviews)
	mux.HandleFunc("POST /books/{id}/rename", srv.handleRenameBook)

	logger.Info("bookshelf listening", "addr", cfg.Listen, "booksTable", cfg.Tables.Books)
	if err := http.ListenAndServe(cfg.Listen, srv.withRequestID(mux)); err != nil {
		log.Fatal(err)
	}
}

type server struct {
	repo   *ddb.Repository
	logger *slog.Logger
}

// reviewSchema resolves the review key schema registered at startup.
func reviewSchema() registry.KeySchema {
	schema, _ := registry.GetKeySchema[review]()
	return schema
}

// withRequestID tags every request with a UUID and logs its outcome.
func (s *server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		s.logger.Info("request", "id", requestID, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	item, err := s.repo.Get(r.Context(), storagemodels.PrimaryKey{PartitionKey: r.PathValue("id")})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if item == nil {
		s.respondError(w, r, rkerrors.NewNotFoundError("Book", r.PathValue("id")))
		return
	}
	s.respondItem(w, r, item)
}

func (s *server) handlePutBook(w http.ResponseWriter, r *http.Request) {
	var attrs map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&attrs); err != nil {
		s.respondError(w, r, rkerrors.NewValidationError("body", err.Error()))
		return
	}

	item, err := attributevalue.MarshalMap(attrs)
	if err != nil {
		s.respondError(w, r, rkerrors.NewValidationError("body", err.Error()))
		return
	}
	item["PK"] = &types.AttributeValueMemberS{Value: r.PathValue("id")}

	err = s.repo.Mutate(r.Context(), []storagemodels.WriteOperation{
		{Kind: storagemodels.OperationPut, Item: item},
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	schema := reviewSchema()
	items, err := s.repo.FindRelated(r.Context(), r.PathValue("id"), storagemodels.RelatedQueryOptions{
		TableName:          schema.TableName,
		ReferenceAttribute: schema.ReferenceAttribute,
		PreferIndex:        schema.ReferenceIndexName != "",
		IndexName:          schema.ReferenceIndexName,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	reviews := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		review, err := unmarshalItem(item)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		reviews = append(reviews, review)
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"reviews": reviews})
}

type renameRequest struct {
	NewID      string                 `json:"newId"`
	Attributes map[string]interface{} `json:"attributes"`
}

func (s *server) handleRenameBook(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, rkerrors.NewValidationError("body", err.Error()))
		return
	}
	if req.NewID == "" {
		s.respondError(w, r, rkerrors.NewValidationError("newId", "must not be empty"))
		return
	}

	attrs, err := attributevalue.MarshalMap(req.Attributes)
	if err != nil {
		s.respondError(w, r, rkerrors.NewValidationError("attributes", err.Error()))
		return
	}

	schema := reviewSchema()
	result, err := s.repo.ReplacePrimaryKey(r.Context(),
		storagemodels.PrimaryKey{PartitionKey: r.PathValue("id")},
		storagemodels.PrimaryKey{PartitionKey: req.NewID},
		attrs,
		storagemodels.ReplaceKeyConfig{
			TableName:          schema.TableName,
			ReferenceAttribute: schema.ReferenceAttribute,
			QueryRelatedItems:  true,
			IndexName:          schema.ReferenceIndexName,
		})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	book, err := unmarshalItem(result.Entity)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	body := map[string]interface{}{"book": book}
	if result.RelatedItemsErr != nil {
		// The rename committed; only the visibility read failed.
		body["relatedItemsError"] = result.RelatedItemsErr.Error()
	} else if result.RelatedItems != nil {
		related := make([]map[string]interface{}, 0, len(result.RelatedItems))
		for _, item := range result.RelatedItems {
			m, err := unmarshalItem(item)
			if err != nil {
				s.respondError(w, r, err)
				return
			}
			related = append(related, m)
		}
		body["relatedItems"] = related
	}
	s.respondJSON(w, http.StatusOK, body)
}

func (s *server) respondItem(w http.ResponseWriter, r *http.Request, item map[string]types.AttributeValue) {
	m, err := unmarshalItem(item)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, m)
}

func (s *server) respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	s.logger.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err,
	)
	s.respondJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor maps the error taxonomy to transport status codes. The mapping
// lives here at the boundary; the core only classifies.
func statusFor(err error) int {
	switch {
	case rkerrors.IsNotFound(err):
		return http.StatusNotFound
	case rkerrors.IsEmptyTransaction(err),
		rkerrors.IsTransactionTooLarge(err),
		rkerrors.IsValidationError(err):
		return http.StatusBadRequest
	case rkerrors.IsDatabaseOperationError(err):
		var dbErr *rkerrors.DatabaseOperationError
		if errors.As(err, &dbErr) {
			switch dbErr.Kind {
			case rkerrors.KindConflict:
				return http.StatusConflict
			case rkerrors.KindConditionFailed:
				return http.StatusPreconditionFailed
			case rkerrors.KindCapacity:
				return http.StatusServiceUnavailable
			case rkerrors.KindValidation:
				return http.StatusBadRequest
			}
		}
		return http.StatusBadGateway
	case rkerrors.IsStoreQueryError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func unmarshalItem(item map[string]types.AttributeValue) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := attributevalue.UnmarshalMap(item, &m); err != nil {
		return nil, err
	}
	return m, nil
}
