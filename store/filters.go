package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func buildIssueFilter(f IssueFilter) bson.M {
	filter := bson.M{}

	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	if f.AuthorityID != nil {
		filter["assigned_authority_id"] = *f.AuthorityID
	}
	if !f.CreatedAfter.IsZero() {
		filter["created_at"] = bson.M{"$gte": f.CreatedAfter.UTC()}
	}
	if f.HasCoordinates {
		filter["latitude"] = bson.M{"$ne": nil}
		filter["longitude"] = bson.M{"$ne": nil}
	}
	if f.Within != nil {
		filter["latitude"] = bson.M{"$gte": f.Within.MinLat, "$lte": f.Within.MaxLat}
		filter["longitude"] = bson.M{"$gte": f.Within.MinLon, "$lte": f.Within.MaxLon}
	}

	return filter
}

func issueFindOptions(q IssueQuery) *options.FindOptions {
	direction := -1
	if q.Order == OldestFirst {
		direction = 1
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: direction}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	if q.Offset > 0 {
		opts.SetSkip(int64(q.Offset))
	}
	return opts
}
