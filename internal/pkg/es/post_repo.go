package es

import (
	"context"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

// PostES 帖子搜索文档，只收录已发布的帖子
type PostES struct {
	ID          uint64   `json:"id"`
	AuthorID    uint64   `json:"author_id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	PublishedAt int64    `json:"published_at"`
}

type PostRepo interface {
	IndexPost(ctx context.Context, post *PostES) error
	DeletePost(ctx context.Context, id uint64) error
	SearchPosts(ctx context.Context, keyword string, from, size int) ([]*PostES, error)
}

type PostRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewPostRepo(client *elasticsearch.TypedClient) PostRepo {
	return &PostRepoImpl{client: client}
}

// IndexPost 写入或覆盖帖子文档
func (s *PostRepoImpl) IndexPost(ctx context.Context, post *PostES) error {
	_, err := s.client.Index(PostIndex).
		Id(strconv.FormatUint(post.ID, 10)).
		Request(post).
		Do(ctx)
	return err
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	_, err := s.client.Delete(PostIndex, strconv.FormatUint(id, 10)).Do(ctx)
	return err
}

// SearchPosts 标题/正文/标签全文检索，标题加权
func (s *PostRepoImpl) SearchPosts(ctx context.Context, keyword string, from, size int) ([]*PostES, error) {
	if from >= MaxSearchDepth {
		return []*PostES{}, nil
	}

	resp, err := s.client.Search().
		Index(PostIndex).
		From(from).
		Size(size).
		Query(&types.Query{
			MultiMatch: &types.MultiMatchQuery{
				Query:  keyword,
				Fields: []string{"title^2", "content", "tags"},
			},
		}).
		Sort(
			types.SortOptions{Score_: &types.ScoreSort{Order: &sortorder.Desc}},
			types.SortOptions{SortOptions: map[string]types.FieldSort{
				"published_at": {Order: &sortorder.Desc},
			}},
		).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]*PostES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var post PostES
		if err := json.Unmarshal(hit.Source_, &post); err != nil {
			continue
		}
		posts = append(posts, &post)
	}
	return posts, nil
}
