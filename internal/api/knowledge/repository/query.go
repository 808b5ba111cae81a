package knowledgeRepository

const (
	queryCreateArticle = `
		INSERT INTO knowledge_articles (
			id,
			title,
			category,
			keywords,
			problem,
			solution,
			steps,
			views,
			helpful,
			not_helpful,
			is_published,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:category,
			:keywords,
			:problem,
			:solution,
			:steps,
			:views,
			:helpful,
			:not_helpful,
			:is_published,
			:created_at,
			:updated_at
		)
	`

	queryGetArticleByID = `
		SELECT
			id,
			title,
			category,
			keywords,
			problem,
			solution,
			steps,
			views,
			helpful,
			not_helpful,
			is_published,
			created_at,
			updated_at
		FROM knowledge_articles
		WHERE id = :id
	`

	queryGetPublishedArticles = `
		SELECT
			id,
			title,
			category,
			keywords,
			problem,
			solution,
			steps,
			views,
			helpful,
			not_helpful,
			is_published,
			created_at,
			updated_at
		FROM knowledge_articles
		WHERE is_published = TRUE
		ORDER BY views DESC
		LIMIT :limit
	`

	queryGetPublishedArticlesByCategory = `
		SELECT
			id,
			title,
			category,
			keywords,
			problem,
			solution,
			steps,
			views,
			helpful,
			not_helpful,
			is_published,
			created_at,
			updated_at
		FROM knowledge_articles
		WHERE is_published = TRUE
			AND category = :category
		ORDER BY views DESC
		LIMIT :limit
	`

	queryUpdateArticle = `
		UPDATE knowledge_articles
		SET
			title = CASE WHEN :title = '' THEN title ELSE :title END,
			category = CASE WHEN :category = '' THEN category ELSE :category END,
			keywords = :keywords,
			problem = CASE WHEN :problem = '' THEN problem ELSE :problem END,
			solution = CASE WHEN :solution = '' THEN solution ELSE :solution END,
			steps = :steps,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryIncrementViews = `
		UPDATE knowledge_articles
		SET views = views + 1
		WHERE id = :id
	`

	queryAddHelpful = `
		UPDATE knowledge_articles
		SET helpful = helpful + 1
		WHERE id = :id
	`

	queryAddNotHelpful = `
		UPDATE knowledge_articles
		SET not_helpful = not_helpful + 1
		WHERE id = :id
	`

	queryCountArticles = `
		SELECT COUNT(*)
		FROM knowledge_articles
	`
)
