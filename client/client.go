package client

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/habiutomo/portal-berita/internal/model"
)

// Client is a thin HTTP client for the portal API, used by the integration
// tests and handy for smoke checks.
type Client struct {
	http.Client
	Addr string
}

func (c *Client) Ping() (string, error) {
	req, err := http.NewRequest("GET", c.Addr+"/ping", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), err
}

func (c *Client) Categories() ([]model.Category, error) {
	return c.getCategories(c.Addr + "/categories")
}

func (c *Client) SearchArticles(query string) ([]model.Article, error) {
	return c.getArticles(c.Addr + "/search?q=" + query)
}

func (c *Client) LatestArticles(limit int) ([]model.Article, error) {
	return c.getArticles(fmt.Sprintf("%s/articles/latest?limit=%d", c.Addr, limit))
}

func (c *Client) getCategories(url string) ([]model.Category, error) {
	resp, err := c.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	var categories []model.Category
	if err := json.NewDecoder(resp.Body).Decode(&categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *Client) getArticles(url string) ([]model.Article, error) {
	resp, err := c.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	var articles []model.Article
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		return nil, err
	}

	return articles, nil
}
