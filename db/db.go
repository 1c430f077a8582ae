package db

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetTrackMetadatas fetches title/artist/release rows for the given
// recording ids. Lookups are best effort: any DynamoDB failure is
// reported and swallowed so a dead metadata table never blocks a
// session. Callers should gate on constants.GetMetadataTable().
func GetTrackMetadatas(recordingIds []string) map[string]model.TrackMetadata {
	if len(recordingIds) > constants.MetadataBatchSize {
		panic(fmt.Sprintf("Not supposed to pass in more than %v recording ids!", constants.MetadataBatchSize))
	}

	res := make(map[string]model.TrackMetadata)

	table := constants.GetMetadataTable()
	if table == "" || len(recordingIds) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, id := range recordingIds {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(id),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetDynamoEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetDynamoRegion()),
		Endpoint: &endpoint,
	})
	if err != nil {
		fmt.Printf("Skipping metadata because: %v\n", err)
		return res
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		fmt.Printf("Skipping metadata because: %v\n", err)
		return res
	}

	for _, v := range dbres.Responses[table] {
		pk := strAttr(v, "PK")
		if pk == "" {
			continue
		}
		var m model.TrackMetadata
		m.Title = strAttr(v, "Title")
		m.Artist = strAttr(v, "Artist")
		m.Release = strAttr(v, "Release")
		if attr, ok := v["Year"]; ok && attr.N != nil {
			year, _ := strconv.ParseUint(*attr.N, 10, 32)
			m.Year = uint(year)
		}
		res[pk] = m
	}

	return res
}

func strAttr(item map[string]*dynamodb.AttributeValue, name string) string {
	if attr, ok := item[name]; ok && attr.S != nil {
		return *attr.S
	}
	return ""
}
