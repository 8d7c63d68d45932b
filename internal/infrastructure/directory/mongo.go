package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/cowryhub/cowry-backend/internal/domain/contract"
	"github.com/cowryhub/cowry-backend/internal/domain/entity"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/metrics"
)

// caseInsensitive is the collation used for nickname lookups and the
// nickname unique index (strength 2 folds case).
var caseInsensitive = options.Collation{Locale: "en", Strength: 2}

// MongoDirectory is the embedded identity directory for self-hosted
// deployments. Unlike the hosted provider, it enforces nickname uniqueness
// at write time with a collation-backed unique index, which closes the
// check-then-create race the scan-based resolver cannot.
type MongoDirectory struct {
	users    *mongo.Collection
	sessions *SessionManager
	uuidGen  contract.IUUIDGenerator
	hashCost int
}

var (
	_ contract.IIdentityDirectory = (*MongoDirectory)(nil)
	_ contract.INicknameIndex    = (*MongoDirectory)(nil)
)

func NewMongoDirectory(users *mongo.Collection, sessions *SessionManager, uuidGen contract.IUUIDGenerator) *MongoDirectory {
	return &MongoDirectory{
		users:    users,
		sessions: sessions,
		uuidGen:  uuidGen,
		hashCost: bcrypt.DefaultCost,
	}
}

// EnsureIndexes creates the unique nickname and email indexes. Call once
// at startup.
func (d *MongoDirectory) EnsureIndexes(ctx context.Context) error {
	_, err := d.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "nickname", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetCollation(&caseInsensitive),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("%w: create indexes: %v", entity.ErrUpstream, err)
	}
	return nil
}

func (d *MongoDirectory) ListIdentities(ctx context.Context) (out []*entity.Identity, err error) {
	defer func() { observe("list", err) }()

	cursor, err := d.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: list identities: %v", entity.ErrUpstream, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var ident entity.Identity
		if err := cursor.Decode(&ident); err != nil {
			return nil, fmt.Errorf("%w: decode identity: %v", entity.ErrUpstream, err)
		}
		ident.PasswordHash = ""
		out = append(out, &ident)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: list identities: %v", entity.ErrUpstream, err)
	}
	return out, nil
}

func (d *MongoDirectory) GetIdentityByID(ctx context.Context, id string) (ident *entity.Identity, err error) {
	defer func() { observe("get", err) }()
	return d.findOne(ctx, bson.M{"_id": id}, nil)
}

// FindByNickname implements contract.INicknameIndex: the resolver takes
// this indexed path instead of scanning the full list.
func (d *MongoDirectory) FindByNickname(ctx context.Context, nickname string) (ident *entity.Identity, err error) {
	defer func() { observe("find_by_nickname", err) }()
	return d.findOne(ctx, bson.M{"nickname": nickname}, options.FindOne().SetCollation(&caseInsensitive))
}

func (d *MongoDirectory) CreateIdentity(ctx context.Context, ident *entity.Identity, password string) (created *entity.Identity, err error) {
	defer func() { observe("create", err) }()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	doc := *ident
	if doc.ID == "" {
		doc.ID = d.uuidGen.NewUUID()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	doc.PasswordHash = string(hash)

	if _, err := d.users.InsertOne(ctx, &doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, entity.ErrNicknameTaken
		}
		return nil, fmt.Errorf("%w: create identity: %v", entity.ErrUpstream, err)
	}

	doc.PasswordHash = ""
	return &doc, nil
}

func (d *MongoDirectory) VerifyPassword(ctx context.Context, email, password string) (session *contract.Session, err error) {
	defer func() { observe("verify_password", err) }()

	var stored entity.Identity
	if err := d.users.FindOne(ctx, bson.M{"email": email}).Decode(&stored); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: lookup identity: %v", entity.ErrUpstream, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	ident, err := d.findOneAndUpdate(ctx, stored.ID, bson.M{"last_sign_in_at": now})
	if err != nil {
		return nil, err
	}

	token, err := d.sessions.Issue(ident.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: issue session: %v", entity.ErrUpstream, err)
	}
	return &contract.Session{Token: token, Identity: ident}, nil
}

func (d *MongoDirectory) VerifyToken(ctx context.Context, token string) (ident *entity.Identity, err error) {
	defer func() { observe("verify_token", err) }()

	id, err := d.sessions.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	ident, err = d.findOne(ctx, bson.M{"_id": id}, nil)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}
	return ident, nil
}

func (d *MongoDirectory) UpdateIdentity(ctx context.Context, id string, patch contract.IdentityPatch) (ident *entity.Identity, err error) {
	defer func() { observe("update", err) }()

	set := bson.M{}
	if patch.Nickname != nil {
		set["nickname"] = *patch.Nickname
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.CWT != nil {
		set["balance.cwt"] = *patch.CWT
	}
	if patch.CWS != nil {
		set["balance.cws"] = *patch.CWS
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Province != nil {
		set["province"] = *patch.Province
	}
	if patch.WalletAddress != nil {
		set["wallet_address"] = *patch.WalletAddress
	}
	if patch.NotificationsEnabled != nil {
		set["notifications_enabled"] = *patch.NotificationsEnabled
	}
	if patch.LastSignInAt != nil {
		set["last_sign_in_at"] = *patch.LastSignInAt
	}
	if len(set) == 0 {
		return d.findOne(ctx, bson.M{"_id": id}, nil)
	}
	return d.findOneAndUpdate(ctx, id, set)
}

func (d *MongoDirectory) UpdatePassword(ctx context.Context, id, newPassword string) (err error) {
	defer func() { observe("update_password", err) }()

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), d.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	res, err := d.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"password_hash": string(hash)}})
	if err != nil {
		return fmt.Errorf("%w: update password: %v", entity.ErrUpstream, err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (d *MongoDirectory) RevokeSession(ctx context.Context, token string) (err error) {
	defer func() { observe("revoke_session", err) }()
	return d.sessions.Revoke(ctx, token)
}

func (d *MongoDirectory) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*entity.Identity, error) {
	var ident entity.Identity
	var err error
	if opts != nil {
		err = d.users.FindOne(ctx, filter, opts).Decode(&ident)
	} else {
		err = d.users.FindOne(ctx, filter).Decode(&ident)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("%w: lookup identity: %v", entity.ErrUpstream, err)
	}
	ident.PasswordHash = ""
	return &ident, nil
}

func (d *MongoDirectory) findOneAndUpdate(ctx context.Context, id string, set bson.M) (*entity.Identity, error) {
	var ident entity.Identity
	err := d.users.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ident)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, entity.ErrNicknameTaken
		}
		return nil, fmt.Errorf("%w: update identity: %v", entity.ErrUpstream, err)
	}
	ident.PasswordHash = ""
	return &ident, nil
}

// observe records one directory call in the shared metrics.
func observe(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.DirectoryCallsTotal.WithLabelValues(operation, outcome).Inc()
}
