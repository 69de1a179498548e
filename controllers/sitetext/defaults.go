package siteTextController

// siteTextDefaults holds the built-in copy for every overridable text key.
// A SiteText row overrides the default for its key; no row means the default
// is used.
var siteTextDefaults = map[string]string{
	"home.hero.badge":        "Про Семью, Про Единство",
	"home.hero.title":        "Вы не одни.\nМы рядом, чтобы поддержать вас.",
	"home.hero.subtitle":     "Психологическая поддержка для вас.",
	"home.hero.ctaPrimary":   "Обратитесь к нам прямо сейчас",
	"home.hero.ctaSecondary": "Что мы делаем",

	"home.what.title":    "Что мы делаем",
	"home.what.subtitle": "Основные направления поддержки — просто и по делу.",

	"home.what.card1.title":       "Консультации психологов",
	"home.what.card1.description": "Индивидуальная поддержка онлайн или в другом удобном формате. Помогаем снизить тревогу, вернуть опору и ясность.",
	"home.what.card2.title":       "Группы поддержки и терапии",
	"home.what.card2.description": "Встречи, где можно быть услышанным и не оставаться один на один с переживаниями. Тёплая среда и понятные правила.",
	"home.what.card3.title":       "Информационные ресурсы и помощь близким",
	"home.what.card3.description": "Рекомендации для родных и друзей, ответы на частые вопросы, аккуратные материалы о том, как поддерживать и не выгорать.",

	"footer.about":       "Психологическая поддержка гражданам и их семьям, пережившим тяжёлые события. Бережно, конфиденциально, рядом.",
	"footer.links.title": "Информация",
	"footer.help.label":  "Помощь проекту",
	"footer.help.href":   "/support",
	"footer.admin.label": "Админ",
	"footer.emergency":   "Если вы чувствуете угрозу жизни или сильный кризис — пожалуйста, обратитесь в экстренные службы вашего региона.",
}

// IsKnownSiteTextKey reports whether a key belongs to the fixed overridable set
func IsKnownSiteTextKey(key string) bool {
	_, ok := siteTextDefaults[key]
	return ok
}
