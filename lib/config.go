package lib

import "os"

const defaultBlogTitle = "Blog"

func GetBlogTitle() string {
	if title := os.Getenv("BLOG_TITLE"); title != "" {
		return title
	}
	return defaultBlogTitle
}

const AboutText = "A small blog client. Posts live on a remote post service;\n" +
	"this app lists, searches, writes and deletes them."
