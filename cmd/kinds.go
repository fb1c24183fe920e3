package cmd

import (
	"fmt"
	"strings"

	apperrors "catalog/pkg/errors"
)

// kind 命令行中的聚合名称
type kind string

const (
	kindCategory   kind = "categories"
	kindCastMember kind = "cast-members"
	kindGenre      kind = "genres"
	kindVideo      kind = "videos"
)

var kindAliases = map[string]kind{
	"category":     kindCategory,
	"categories":   kindCategory,
	"cast-member":  kindCastMember,
	"cast-members": kindCastMember,
	"castmember":   kindCastMember,
	"castmembers":  kindCastMember,
	"genre":        kindGenre,
	"genres":       kindGenre,
	"video":        kindVideo,
	"videos":       kindVideo,
}

func parseKind(s string) (kind, error) {
	k, ok := kindAliases[strings.ToLower(s)]
	if !ok {
		return "", apperrors.InvalidArgument(fmt.Sprintf("unknown kind %q (categories, cast-members, genres, videos)", s))
	}
	return k, nil
}
