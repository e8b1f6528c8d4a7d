package versia

import "github.com/yumine/versia/internal"

// findActorURIFromWebfinger - Webfingerからアクターの URI を取得する
// 見つからない場合は空文字を返す
func findActorURIFromWebfinger(webfinger *internal.JSONWebfinger) string {
	for _, link := range webfinger.Links {
		if link.Rel == "self" && link.Type == "application/json" {
			return link.Href
		}
	}
	// ActivityPub 由来のサーバーへのフォールバック
	for _, link := range webfinger.Links {
		if link.Rel == "self" {
			return link.Href
		}
	}
	return ""
}
