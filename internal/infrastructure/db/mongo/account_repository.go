package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/levitica/hr-system/internal/core/domain"
)

const (
	accountsCollection = "users"
	countersCollection = "counters"
	accountIDCounter   = "account_id"
)

// AccountRepository persists accounts in MongoDB. Numeric ids come from a
// counters document ($inc upsert), and email uniqueness is enforced by a
// unique index; duplicate-key errors surface as domain.ErrEmailTaken.
type AccountRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{
		coll:     db.Collection(accountsCollection),
		counters: db.Collection(countersCollection),
	}
}

type accountDoc struct {
	ID           int64     `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	Status       string    `bson:"status"`
	AccountURL   string    `bson:"account_url,omitempty"`
	PhoneNumber  string    `bson:"phone_number,omitempty"`
	Website      string    `bson:"website,omitempty"`
	Address      string    `bson:"address,omitempty"`
	PlanName     string    `bson:"plan_name,omitempty"`
	PlanType     string    `bson:"plan_type,omitempty"`
	Currency     string    `bson:"currency,omitempty"`
	Language     string    `bson:"language,omitempty"`
	ProfileImage string    `bson:"profile_image,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
	CreatedBy    int64     `bson:"created_by,omitempty"`
}

// EnsureIndexes creates the unique email index. Call once at startup.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (r *AccountRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": accountIDCounter},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next account id: %w", err)
	}
	return counter.Seq, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := fromDomain(account)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := doc.toDomain()
	return created, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var doc accountDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	var doc accountDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	filter := bson.M{"email": email}
	if excludeID != 0 {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count accounts by email: %w", err)
	}
	return n > 0, nil
}

func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	doc := fromDomain(account)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": account.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return doc.toDomain(), nil
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) ListByRole(ctx context.Context, role domain.Role, skip, limit int64) ([]*domain.Account, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"role": string(role)}, opts)
	if err != nil {
		return nil, fmt.Errorf("list accounts by role: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []*domain.Account
	for cursor.Next(ctx) {
		var doc accountDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

func fromDomain(a *domain.Account) accountDoc {
	return accountDoc{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
		Status:       string(a.Status),
		AccountURL:   a.AccountURL,
		PhoneNumber:  a.PhoneNumber,
		Website:      a.Website,
		Address:      a.Address,
		PlanName:     a.PlanName,
		PlanType:     a.PlanType,
		Currency:     a.Currency,
		Language:     a.Language,
		ProfileImage: a.ProfileImage,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		CreatedBy:    a.CreatedBy,
	}
}

func (d accountDoc) toDomain() *domain.Account {
	return &domain.Account{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
		Status:       domain.Status(d.Status),
		AccountURL:   d.AccountURL,
		PhoneNumber:  d.PhoneNumber,
		Website:      d.Website,
		Address:      d.Address,
		PlanName:     d.PlanName,
		PlanType:     d.PlanType,
		Currency:     d.Currency,
		Language:     d.Language,
		ProfileImage: d.ProfileImage,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		CreatedBy:    d.CreatedBy,
	}
}
