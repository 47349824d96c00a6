package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"civicreport-be/apperrors"
	"civicreport-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	IssuesCollection       = "issues"
	AuthoritiesCollection  = "authorities"
	IssueUpdatesCollection = "issue_updates"
	UsersCollection        = "users"

	defaultTimeout = 10 * time.Second
)

// MongoStore implements IssueStore and UserStore on a single database.
type MongoStore struct {
	issues      *mongo.Collection
	authorities *mongo.Collection
	updates     *mongo.Collection
	users       *mongo.Collection
	timeout     time.Duration
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		issues:      db.Collection(IssuesCollection),
		authorities: db.Collection(AuthoritiesCollection),
		updates:     db.Collection(IssueUpdatesCollection),
		users:       db.Collection(UsersCollection),
		timeout:     defaultTimeout,
	}
}

var (
	_ IssueStore = (*MongoStore)(nil)
	_ UserStore  = (*MongoStore)(nil)
)

func (s *MongoStore) FetchIssues(ctx context.Context, q IssueQuery) ([]models.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.issues.Find(ctx, buildIssueFilter(q.Filter), issueFindOptions(q))
	if err != nil {
		return nil, unavailable("find issues", err)
	}
	defer cursor.Close(ctx)

	return decodeIssues(ctx, cursor)
}

// decodeIssues drains cursor, skipping documents that do not decode into an
// Issue. Only a failing cursor makes the result unavailable.
func decodeIssues(ctx context.Context, cursor *mongo.Cursor) ([]models.Issue, error) {
	issues := make([]models.Issue, 0)
	for cursor.Next(ctx) {
		var issue models.Issue
		if err := cursor.Decode(&issue); err != nil {
			log.Printf("Skipping malformed issue %v: %v", cursor.Current.Lookup("_id"), err)
			continue
		}
		issues = append(issues, issue)
	}
	if err := cursor.Err(); err != nil {
		return nil, unavailable("decode issues", err)
	}
	return issues, nil
}

func (s *MongoStore) CountIssues(ctx context.Context, f IssueFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	count, err := s.issues.CountDocuments(ctx, buildIssueFilter(f))
	if err != nil {
		return 0, unavailable("count issues", err)
	}
	return count, nil
}

func (s *MongoStore) GetIssue(ctx context.Context, id string) (*models.Issue, error) {
	issueID, err := parseID("issue", id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var issue models.Issue
	if err := s.issues.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue); err != nil {
		return nil, findOneErr("issue", err)
	}
	return &issue, nil
}

// InsertIssue stores a new issue and fills in its ID and timestamps.
func (s *MongoStore) InsertIssue(ctx context.Context, issue *models.Issue) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := time.Now().UTC()
	if issue.ID.IsZero() {
		issue.ID = primitive.NewObjectID()
	}
	if issue.CreatedAt.IsZero() {
		issue.CreatedAt = now
	}
	issue.UpdatedAt = now

	if _, err := s.issues.InsertOne(ctx, issue); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: booking reference %s", apperrors.ErrConflict, issue.BookingReference)
		}
		return unavailable("insert issue", err)
	}
	return nil
}

// UpdateIssueStatus applies the change and appends a status_change entry to
// the issue history. It returns the updated issue.
func (s *MongoStore) UpdateIssueStatus(ctx context.Context, id string, change StatusChange) (*models.Issue, error) {
	issueID, err := parseID("issue", id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := time.Now().UTC()
	set := bson.M{"status": change.Status, "updated_at": now}
	if change.Note != nil {
		set["resolution_notes"] = *change.Note
	}
	if change.AuthorityID != nil {
		set["assigned_authority_id"] = *change.AuthorityID
	}

	var previous models.Issue
	err = s.issues.FindOneAndUpdate(ctx,
		bson.M{"_id": issueID},
		statusUpdate(set, change.Status, now),
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&previous)
	if err != nil {
		return nil, findOneErr("issue", err)
	}

	update := models.IssueUpdate{
		ID:              primitive.NewObjectID(),
		IssueID:         issueID,
		UpdatedByUserID: change.UpdatedByUserID,
		PreviousStatus:  previous.Status,
		NewStatus:       change.Status,
		UpdateType:      models.UpdateStatusChange,
		Comment:         change.Note,
		IsPublic:        true,
		CreatedAt:       now,
	}
	if _, err := s.updates.InsertOne(ctx, update); err != nil {
		// the status itself is already saved
		log.Printf("Failed to record history for issue %s: %v", id, err)
	}

	updated := previous
	updated.Status = change.Status
	updated.UpdatedAt = now
	if change.Note != nil {
		updated.ResolutionNotes = change.Note
	}
	if change.AuthorityID != nil {
		updated.AssignedAuthorityID = change.AuthorityID
	}
	updated.ResolvedAt = nil
	if change.Status == models.Resolved {
		updated.ResolvedAt = &now
	}
	return &updated, nil
}

// statusUpdate stamps resolved_at when an issue becomes resolved and clears it
// when the issue leaves that state. Later feedback never touches it.
func statusUpdate(set bson.M, status models.IssueStatus, now time.Time) bson.M {
	if status == models.Resolved {
		set["resolved_at"] = now
		return bson.M{"$set": set}
	}
	return bson.M{"$set": set, "$unset": bson.M{"resolved_at": ""}}
}

// RateIssue records the citizen satisfaction rating and a feedback history entry.
func (s *MongoStore) RateIssue(ctx context.Context, id string, feedback Feedback) (*models.Issue, error) {
	issueID, err := parseID("issue", id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := time.Now().UTC()
	var issue models.Issue
	err = s.issues.FindOneAndUpdate(ctx,
		bson.M{"_id": issueID},
		bson.M{"$set": bson.M{"citizen_satisfaction_rating": feedback.Rating, "updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&issue)
	if err != nil {
		return nil, findOneErr("issue", err)
	}

	update := models.IssueUpdate{
		ID:              primitive.NewObjectID(),
		IssueID:         issueID,
		UpdatedByUserID: feedback.UserID,
		PreviousStatus:  issue.Status,
		NewStatus:       issue.Status,
		UpdateType:      models.UpdateFeedback,
		Comment:         feedback.Comment,
		IsPublic:        false,
		CreatedAt:       now,
	}
	if _, err := s.updates.InsertOne(ctx, update); err != nil {
		log.Printf("Failed to record feedback for issue %s: %v", id, err)
	}
	return &issue, nil
}

// FetchIssueUpdates returns the history of an issue, oldest first.
func (s *MongoStore) FetchIssueUpdates(ctx context.Context, issueID string) ([]models.IssueUpdate, error) {
	oid, err := parseID("issue", issueID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.updates.Find(ctx,
		bson.M{"issue_id": oid},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, unavailable("find issue updates", err)
	}
	defer cursor.Close(ctx)

	updates := make([]models.IssueUpdate, 0)
	if err := cursor.All(ctx, &updates); err != nil {
		return nil, unavailable("decode issue updates", err)
	}
	return updates, nil
}

// FetchAuthorities lists authorities, optionally only those for one category.
func (s *MongoStore) FetchAuthorities(ctx context.Context, category models.Category) ([]models.Authority, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := s.authorities.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, unavailable("find authorities", err)
	}
	defer cursor.Close(ctx)

	authorities := make([]models.Authority, 0)
	if err := cursor.All(ctx, &authorities); err != nil {
		return nil, unavailable("decode authorities", err)
	}
	return authorities, nil
}

func (s *MongoStore) GetAuthority(ctx context.Context, id string) (*models.Authority, error) {
	authorityID, err := parseID("authority", id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var authority models.Authority
	if err := s.authorities.FindOne(ctx, bson.M{"_id": authorityID}).Decode(&authority); err != nil {
		return nil, findOneErr("authority", err)
	}
	return &authority, nil
}

func (s *MongoStore) InsertAuthority(ctx context.Context, authority *models.Authority) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if authority.ID.IsZero() {
		authority.ID = primitive.NewObjectID()
	}
	if authority.CreatedAt.IsZero() {
		authority.CreatedAt = time.Now().UTC()
	}
	if _, err := s.authorities.InsertOne(ctx, authority); err != nil {
		return unavailable("insert authority", err)
	}
	return nil
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, findOneErr("user", err)
	}
	return &user, nil
}

func (s *MongoStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	userID, err := parseID("user", id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return nil, findOneErr("user", err)
	}
	return &user, nil
}

func (s *MongoStore) InsertUser(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := time.Now().UTC()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: user with email %s", apperrors.ErrConflict, user.Email)
		}
		return unavailable("insert user", err)
	}
	return nil
}

// UpsertOfficer promotes the account registered under officer.NIC or
// officer.Email to an officer of officer.AuthorityID. Without such an account
// a new one is created, which needs an already hashed officer.Password.
func (s *MongoStore) UpsertOfficer(ctx context.Context, officer *models.User) (bool, error) {
	if officer.NIC == "" {
		return false, fmt.Errorf("%w: nic is required", apperrors.ErrInvalidArgument)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := time.Now().UTC()
	officer.Role = models.RoleOfficer
	officer.IsVerified = true
	officer.UpdatedAt = now

	var existing models.User
	err := s.users.FindOne(ctx, officerMatch(officer)).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if officer.Password == "" {
			return false, fmt.Errorf("%w: password is required for a new officer account", apperrors.ErrInvalidArgument)
		}
		officer.ID = primitive.NewObjectID()
		officer.CreatedAt = now
		if _, err := s.users.InsertOne(ctx, officer); err != nil {
			return false, officerWriteErr(officer, err)
		}
		return true, nil
	}
	if err != nil {
		return false, unavailable("find officer", err)
	}

	set := officerSet(officer, &existing, now)
	if _, err := s.users.UpdateOne(ctx, bson.M{"_id": existing.ID}, bson.M{"$set": set}); err != nil {
		return false, officerWriteErr(officer, err)
	}
	officer.ID = existing.ID
	officer.CreatedAt = existing.CreatedAt
	return false, nil
}

func officerMatch(officer *models.User) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"nic": officer.NIC},
		bson.M{"email": officer.Email},
	}}
}

// officerSet keeps an existing password; officer.Password only fills one in
// for accounts that never had it.
func officerSet(officer, existing *models.User, now time.Time) bson.M {
	set := bson.M{
		"name":         officer.Name,
		"email":        officer.Email,
		"nic":          officer.NIC,
		"phone":        officer.Phone,
		"role":         officer.Role,
		"authority_id": officer.AuthorityID,
		"is_verified":  true,
		"updated_at":   now,
	}
	if existing.Password == "" && officer.Password != "" {
		set["password"] = officer.Password
	}
	return set
}

func officerWriteErr(officer *models.User, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: another user holds email %s or nic %s", apperrors.ErrConflict, officer.Email, officer.NIC)
	}
	return unavailable("save officer", err)
}

// ClaimAccount sets the password of an account created without one. It fails
// with ErrConflict once the account has a password.
func (s *MongoStore) ClaimAccount(ctx context.Context, id string, passwordHash string) error {
	userID, err := parseID("user", id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.users.UpdateOne(ctx,
		bson.M{"_id": userID, "$or": bson.A{
			bson.M{"password": bson.M{"$exists": false}},
			bson.M{"password": ""},
		}},
		bson.M{"$set": bson.M{"password": passwordHash, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return unavailable("claim account", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: account already has a password", apperrors.ErrConflict)
	}
	return nil
}

func parseID(kind, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid %s id %q", apperrors.ErrInvalidArgument, kind, id)
	}
	return oid, nil
}

func findOneErr(kind string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, kind)
	}
	return unavailable("find "+kind, err)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperrors.ErrDataUnavailable, op, err)
}
