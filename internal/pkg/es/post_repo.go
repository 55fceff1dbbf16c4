package es

import (
	"context"
	"errors"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/goccy/go-json"
)

type PostRepo interface {
	IndexPost(ctx context.Context, post *PostES) error
	SearchPosts(ctx context.Context, keyword string, from, size int) ([]*PostES, error)
}

type PostRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewPostRepo(client *elasticsearch.TypedClient) PostRepo {
	return &PostRepoImpl{client: client}
}

func (s *PostRepoImpl) IndexPost(ctx context.Context, post *PostES) error {
	_, err := s.client.Index(PostIndex).
		Id(post.ID).
		Document(post).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *PostRepoImpl) SearchPosts(ctx context.Context, keyword string, from, size int) ([]*PostES, error) {
	if keyword == "" {
		return []*PostES{}, nil
	}

	query := &types.Query{
		Bool: &types.BoolQuery{
			Should: []types.Query{
				{
					Match: map[string]types.MatchQuery{
						"caption": {Query: keyword},
					},
				},
				{
					Match: map[string]types.MatchQuery{
						"caption": {Query: keyword, Fuzziness: "AUTO"},
					},
				},
			},
		},
	}

	resp, err := s.client.Search().Index(PostIndex).
		Query(query).
		From(from).
		Size(size).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*PostES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var post PostES
		if err = json.Unmarshal(hit.Source_, &post); err != nil {
			continue
		}
		results = append(results, &post)
	}
	return results, nil
}
