package views

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported lists the locales descriptors are translated into. The first
// entry is the fallback.
var Supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var matcher = language.NewMatcher(Supported)

// MatchLocale picks the supported locale closest to s ("zh", "zh-CN",
// "en-GB", ...). Unknown or empty input yields English.
func MatchLocale(s string) language.Tag {
	if s == "" {
		return Supported[0]
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// zh holds the Simplified Chinese titles, keyed by the English source text.
var zh = map[string]string{
	"Batch":                 "批量操作",
	"ID":                    "id",
	"Operation":             "操作",
	"Edit":                  "编辑",
	"Delete":                "删除",
	"Delete this record?":   "确定删除吗？",
	"Created at":            "创建时间",
	"Article count":         "文章数量",
	"Category name":         "分类名称",
	"Tag name":              "标签名称",
	"Avatar":                "头像",
	"Nickname":              "昵称",
	"User nickname":         "用户昵称",
	"Login type":            "登录方式",
	"Roles":                 "角色列表",
	"Role":                  "角色",
	"Status":                "状态",
	"Normal":                "正常",
	"Disabled":              "禁用",
	"Registration IP":       "注册ip",
	"Registration location": "注册地址",
	"Last login":            "最后登录时间",
	"Role key":              "角色标识",
	"Role name":             "角色名称",
	"Default":               "默认",
	"Cover":                 "文章封面",
	"Title":                 "标题",
	"Category":              "分类",
	"Tags":                  "标签",
	"Type":                  "类型",
	"Original":              "原创",
	"Reprint":               "转载",
	"Translation":           "翻译",
	"Public":                "公开",
	"Private":               "私密",
	"Draft":                 "草稿",
	"Top":                   "置顶",
	"Yes":                   "是",
	"No":                    "否",
}

func init() {
	for key, msg := range zh {
		_ = message.SetString(language.SimplifiedChinese, key, msg)
	}
}

// printer returns the message printer for locale.
func printer(locale language.Tag) *message.Printer {
	return message.NewPrinter(locale)
}
