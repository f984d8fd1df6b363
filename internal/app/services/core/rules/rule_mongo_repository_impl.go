package rules

import (
	"context"

	"clinichours-service/internal/app/contracts"
	"clinichours-service/internal/app/models"
	"clinichours-service/internal/pkg/constvars"
	"clinichours-service/internal/pkg/datetime"
	"clinichours-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RuleMongoRepository struct {
	Collection *mongo.Collection
}

func NewRuleMongoRepository(db *mongo.Client, dbName string) contracts.RuleRepository {
	return &RuleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRules),
	}
}

// ruleDocument is the persisted shape. Dates and times are stored in their
// canonical wire strings so documents stay readable in the database.
type ruleDocument struct {
	ID        string             `bson:"_id"`
	RuleType  string             `bson:"rule_type"`
	Day       string             `bson:"day,omitempty"`
	WeekDays  []int              `bson:"week_days,omitempty"`
	Intervals []intervalDocument `bson:"intervals"`
}

type intervalDocument struct {
	Start string `bson:"start"`
	End   string `bson:"end"`
}

func (repo *RuleMongoRepository) FindAll(ctx context.Context) ([]models.Rule, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var documents []ruleDocument
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	rules := make([]models.Rule, 0, len(documents))
	for _, document := range documents {
		rule, err := document.toModel()
		if err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		rules = append(rules, *rule)
	}
	return rules, nil
}

func (repo *RuleMongoRepository) FindByID(ctx context.Context, ruleID string) (*models.Rule, error) {
	var document ruleDocument
	err := repo.Collection.FindOne(ctx, bson.M{"_id": ruleID}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	rule, err := document.toModel()
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return rule, nil
}

// Insert relies on the unique _id index: a concurrent insert of the same id
// fails with a duplicate key error instead of overwriting.
func (repo *RuleMongoRepository) Insert(ctx context.Context, rule *models.Rule) error {
	_, err := repo.Collection.InsertOne(ctx, newRuleDocument(rule))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrMongoDBDuplicateRuleID(err)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *RuleMongoRepository) DeleteByID(ctx context.Context, ruleID string) (bool, error) {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": ruleID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

func newRuleDocument(rule *models.Rule) ruleDocument {
	document := ruleDocument{
		ID:        rule.ID,
		RuleType:  string(rule.RuleType),
		Intervals: make([]intervalDocument, 0, len(rule.Intervals)),
	}
	switch rule.RuleType {
	case models.RuleTypeOneDay:
		document.Day = rule.Day.String()
	case models.RuleTypeWeekly:
		document.WeekDays = rule.WeekDays
	}
	for _, interval := range rule.Intervals {
		document.Intervals = append(document.Intervals, intervalDocument{
			Start: interval.Start.String(),
			End:   interval.End.String(),
		})
	}
	return document
}

func (d ruleDocument) toModel() (*models.Rule, error) {
	rule := &models.Rule{
		ID:        d.ID,
		RuleType:  models.RuleType(d.RuleType),
		WeekDays:  d.WeekDays,
		Intervals: make([]models.Interval, 0, len(d.Intervals)),
	}
	if rule.RuleType == models.RuleTypeOneDay {
		day, err := datetime.ParseDay(d.Day)
		if err != nil {
			return nil, err
		}
		rule.Day = day
	}
	for _, interval := range d.Intervals {
		start, err := datetime.ParseClockTime(interval.Start)
		if err != nil {
			return nil, err
		}
		end, err := datetime.ParseClockTime(interval.End)
		if err != nil {
			return nil, err
		}
		rule.Intervals = append(rule.Intervals, models.Interval{Start: start, End: end})
	}
	return rule, nil
}
