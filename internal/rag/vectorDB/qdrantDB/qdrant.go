package qdrantDB

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"github.com/startup-advisor/backend/internal/config"
	"github.com/startup-advisor/backend/internal/domain/advice"
	"github.com/startup-advisor/backend/internal/rag/embedding"
	"github.com/startup-advisor/backend/internal/rag/vectorDB"
	"github.com/startup-advisor/backend/pkg/logger_i"
)

var (
	logger         *logger_i.Logger
	qdrantInstance *qdrant.Client
	once           sync.Once
)

var (
	dimension      = uint64(config.EmbeddingOutputDimensionality)
	collectionName = config.CollectionName
)

type ClientHolder struct {
	qObj     *qdrant.Client
	embedder embedding.Embedder
}

// GetQdrantClient returns the process-wide Qdrant-backed store, or nil when
// the connection could not be established.
func GetQdrantClient(ctx context.Context, embedder embedding.Embedder) vectorDB.DataProcessor {
	once.Do(func() {
		logger = logger_i.NewLogger("Qdrant")
		if client := newClient(); client != nil {
			qdrantInstance = client
			go closeQdrant(ctx, qdrantInstance)
		}
	})

	if qdrantInstance == nil {
		return nil
	}
	return &ClientHolder{qObj: qdrantInstance, embedder: embedder}
}

func newClient() *qdrant.Client {
	host, port := config.QdrantAddress()

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		APIKey:   config.QdrantAPIKey(),
		UseTLS:   config.QdrantUseTLS(),
		PoolSize: config.QdrantPoolSize,
	})
	if err != nil {
		logger.Error("could not instantiate Qdrant client", "error", err)
		return nil
	}
	return client
}

func closeQdrant(ctx context.Context, client *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant client")
	if err := client.Close(); err != nil {
		logger.Error("could not close Qdrant client", "error", err)
	}
}

func (db *ClientHolder) InitializeCollection(ctx context.Context) error {
	exists, err := db.qObj.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}

	if !exists {
		err = db.qObj.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: collectionName,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     dimension,
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return err
		}
		logger.Info("Created collection", "collection", collectionName)
	} else {
		logger.Debug("Collection already exists", "collection", collectionName)
	}

	db.ensureIndexes(ctx)
	return nil
}

// ensureIndexes creates the keyword payload indexes backing the stage and
// book filters. An index that already exists is success, not failure.
func (db *ClientHolder) ensureIndexes(ctx context.Context) {
	for _, field := range []string{"stage", "book"} {
		_, err := db.qObj.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
			CollectionName: collectionName,
			FieldName:      field,
			FieldType:      qdrant.FieldType_FieldTypeKeyword.Enum(),
		})
		if err != nil {
			logger.Debug("Payload index may already exist", "field", field, "error", err)
			continue
		}
		logger.Info("Created payload index", "field", field)
	}
}

func (db *ClientHolder) StoreDocuments(ctx context.Context, chunks []advice.Chunk) {
	if len(chunks) == 0 {
		logger.Warn("No chunks provided to store")
		return
	}

	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		texts = append(texts, chunk.Content)
	}

	vectors, err := db.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		logger.Error("Embedding chunk batch failed, nothing stored", "error", err)
		return
	}

	points := make([]*qdrant.PointStruct, len(chunks))
	for i, chunk := range chunks {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(uuid.New().String()),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: BuildPayload(chunk),
		}
	}

	_, err = db.qObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Points:         points,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		logger.Error("Error storing documents", "collection", collectionName, "error", err)
		return
	}
	logger.Info("Stored documents", "collection", collectionName, "points", len(points))
}

func (db *ClientHolder) SearchSimilar(ctx context.Context, query string, limit int, stages []string) ([]advice.RetrievedContext, error) {
	if limit <= 0 {
		return nil, nil
	}

	exists, err := db.qObj.CollectionExists(ctx, collectionName)
	if err != nil {
		return nil, err
	}
	if !exists {
		logger.Warn("Collection does not exist, no search performed", "collection", collectionName)
		return nil, nil
	}

	vector, err := db.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	var filter *qdrant.Filter
	if len(stages) > 0 {
		filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatchKeywords("stage", stages...),
			},
		}
	}

	hits, err := db.qObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collectionName,
		Query:          qdrant.NewQuery(vector...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		logger.Error("Error querying Qdrant", "collection", collectionName, "error", err)
		return nil, err
	}

	return RankHits(hits, limit), nil
}

func (db *ClientHolder) PointCount(ctx context.Context) (uint64, bool) {
	info, err := db.qObj.GetCollectionInfo(ctx, collectionName)
	if err != nil {
		logger.Debug("Could not get collection info", "error", err)
		return 0, false
	}
	return info.GetPointsCount(), true
}
