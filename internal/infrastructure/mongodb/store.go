// Package mongodb implementa los puertos de persistencia sobre MongoDB con
// mongo-go-driver v2. Los nombres de colección y los índices se administran
// centralizados en NewStore; cada repositorio recibe el *Store y trabaja
// sobre su colección.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jhoicas/marketing-crm-api/internal/domain"
)

// Nombres de colección.
const (
	ColUsers  = "users"
	ColOrders = "orders"
)

// Store cliente MongoDB compartido por los repositorios.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore conecta a MongoDB, verifica la conexión y asegura los índices.
// uri ej. "mongodb://localhost:27017"; dbName ej. "marketing_crm".
func NewStore(uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb: conectar: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	s := &Store{client: client, db: client.Database(dbName)}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("mongodb: crear índices: %w", err)
	}
	return s, nil
}

// Close cierra la conexión.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// ensureIndexes crea los índices requeridos. Los únicos sobre users.email y
// orders.order_id respaldan el pre-chequeo de registro y el generador de IDs
// de pedido: la carrera check-then-insert se resuelve en el store.
func (s *Store) ensureIndexes(ctx context.Context) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}
	indexes := []idx{
		{ColUsers, bson.D{{Key: "email", Value: 1}}, true},
		{ColOrders, bson.D{{Key: "order_id", Value: 1}}, true},
		{ColOrders, bson.D{{Key: "user_id", Value: 1}}, false},
	}
	for _, i := range indexes {
		model := mongo.IndexModel{Keys: i.keys}
		if i.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := s.col(i.col).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("índice en %s: %w", i.col, err)
		}
	}
	return nil
}

// wrapError traduce errores del driver a errores de dominio.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicate
	}
	return err
}

// findOne busca un documento y lo decodifica. Sin documento devuelve (nil, nil).
func findOne[T any](ctx context.Context, col *mongo.Collection, filter bson.D) (*T, error) {
	var result T
	err := col.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapError(err)
	}
	return &result, nil
}

// findMany busca hasta limit documentos.
func findMany[T any](ctx context.Context, col *mongo.Collection, filter bson.D, limit int) ([]*T, error) {
	opts := options.Find()
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrapError(err)
	}
	defer cursor.Close(ctx)

	var results []*T
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		results = append(results, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if results == nil {
		results = []*T{}
	}
	return results, nil
}

// insertOne inserta un documento traduciendo claves duplicadas.
func insertOne(ctx context.Context, col *mongo.Collection, doc interface{}) error {
	_, err := col.InsertOne(ctx, doc)
	return wrapError(err)
}
