package rest

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const defaultFeedLimit = 20

type feedOrder string

const (
	orderByDate   feedOrder = "date"
	orderByRating feedOrder = "rating"
)

func parseFeedOrder(s string) (feedOrder, bool) {
	switch s {
	case "", string(orderByDate):
		return orderByDate, true
	case string(orderByRating):
		return orderByRating, true
	}
	return "", false
}

// feedQuery assembles the annotated feed read as one parameterized statement.
// Stages are applied in a fixed order: base predicate, keyword predicates,
// personal filter, rating aggregation with viewer annotation joins,
// post-aggregation favorite/following filters, ordering, pagination.
// User input only ever becomes a bind argument, never query text.
type feedQuery struct {
	viewerID      uuid.UUID
	limit         int
	offset        int
	keywords      []string
	orderBy       feedOrder
	personalOnly  bool
	favoritesOnly bool
	followingOnly bool
	poemID        *int64
}

func newFeedQuery(viewerID uuid.UUID) feedQuery {
	return feedQuery{
		viewerID: viewerID,
		limit:    defaultFeedLimit,
		orderBy:  orderByDate,
	}
}

// forPoem narrows the query to a single poem, dropping pagination. The
// annotation logic stays identical to the feed read.
func (q feedQuery) forPoem(id int64) feedQuery {
	q.poemID = &id
	return q
}

func (q feedQuery) build() (string, []interface{}) {
	// $1 is the viewer in every annotation join.
	args := []interface{}{q.viewerID}
	argCount := 1

	var sb strings.Builder
	sb.WriteString(`
        SELECT p.id, p.user_id, u.username, u.displayname, p.poem_text, p.created_at,
               COALESCE(SUM(v.value), 0)::int AS rating,
               pv.value AS rated,
               (f.poem_id IS NOT NULL) AS is_favorite,
               (fw.followed_id IS NOT NULL) AS is_following,
               (rp.poem_id IS NOT NULL) AS is_reported
        FROM poems p
        JOIN users u ON u.id = p.user_id
        LEFT JOIN votes v ON v.poem_id = p.id
        LEFT JOIN votes pv ON pv.poem_id = p.id AND pv.user_id = $1
        LEFT JOIN favorites f ON f.poem_id = p.id AND f.user_id = $1
        LEFT JOIN follows fw ON fw.followed_id = p.user_id AND fw.follower_id = $1
        LEFT JOIN reports rp ON rp.poem_id = p.id AND rp.user_id = $1
    `)

	var predicates []string

	// Every keyword must match, case-insensitive substring.
	for _, keyword := range q.keywords {
		argCount++
		predicates = append(predicates, fmt.Sprintf("p.poem_text ILIKE '%%' || $%d || '%%'", argCount))
		args = append(args, keyword)
	}

	if q.personalOnly {
		predicates = append(predicates, "p.user_id = $1")
	}

	if q.poemID != nil {
		argCount++
		predicates = append(predicates, fmt.Sprintf("p.id = $%d", argCount))
		args = append(args, *q.poemID)
	}

	if len(predicates) > 0 {
		sb.WriteString(" WHERE " + strings.Join(predicates, " AND "))
	}

	sb.WriteString(`
        GROUP BY p.id, p.user_id, u.username, u.displayname, p.poem_text, p.created_at,
                 pv.value, f.poem_id, fw.followed_id, rp.poem_id
    `)

	// Favorite/following filters depend on the per-viewer annotation, so they
	// apply after aggregation rather than in the base predicate.
	var having []string
	if q.favoritesOnly {
		having = append(having, "f.poem_id IS NOT NULL")
	}
	if q.followingOnly {
		having = append(having, "fw.followed_id IS NOT NULL")
	}
	if len(having) > 0 {
		sb.WriteString(" HAVING " + strings.Join(having, " AND "))
	}

	switch q.orderBy {
	case orderByRating:
		sb.WriteString(" ORDER BY rating DESC, p.created_at DESC")
	default:
		sb.WriteString(" ORDER BY p.created_at DESC, rating DESC")
	}

	if q.poemID == nil {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount+1, argCount+2))
		args = append(args, q.limit, q.offset)
	}

	return sb.String(), args
}
