package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shuleni/kazi/core"
)

// buildFilter translates the closed filter algebra into native operators.
// Only what ParseFilter admits ever reaches this point.
func buildFilter(filter core.Filter) bson.M {
	query := bson.M{}
	for _, clause := range filter {
		field := clause.Field
		if field == "id" {
			field = "_id"
		}
		switch clause.Op {
		case core.FilterEq:
			query[field] = clause.Value
		case core.FilterIn:
			query[field] = bson.M{"$in": clause.Values}
		case core.FilterRange:
			bounds := bson.M{}
			if clause.Min != nil {
				bounds["$gte"] = clause.Min
			}
			if clause.Max != nil {
				bounds["$lte"] = clause.Max
			}
			query[field] = bounds
		}
	}
	return query
}

func buildSort(orderings []core.Ordering) bson.D {
	sort := make(bson.D, 0, len(orderings))
	for _, ord := range orderings {
		direction := 1
		if !ord.Ascending {
			direction = -1
		}
		sort = append(sort, bson.E{Key: ord.Field, Value: direction})
	}
	return sort
}

func buildProjection(projections []core.Projection) bson.D {
	projection := make(bson.D, 0, len(projections))
	for _, p := range projections {
		include := 1
		if !p.Include {
			include = 0
		}
		field := p.Field
		if field == "id" {
			field = "_id"
		}
		projection = append(projection, bson.E{Key: field, Value: include})
	}
	return projection
}

func findOptions(opts core.ListOptions) *options.FindOptions {
	findOpts := options.Find().SetSkip(opts.Skip).SetLimit(opts.Limit)
	if len(opts.Sort) > 0 {
		findOpts.SetSort(buildSort(opts.Sort))
	}
	if len(opts.Select) > 0 {
		findOpts.SetProjection(buildProjection(opts.Select))
	}
	return findOpts
}

func findOneOptions(project []core.Projection) *options.FindOneOptions {
	findOpts := options.FindOne()
	if len(project) > 0 {
		findOpts.SetProjection(buildProjection(project))
	}
	return findOpts
}
