package api

import "fmt"

func (c *Client) ListLanguages() ([]Language, error) {
	body, err := c.get("/languages")
	if err != nil {
		return nil, err
	}
	return decodeList[Language](body)
}

func (c *Client) CreateLanguage(input CreateLanguageInput) (*Language, error) {
	body, err := c.post("/languages", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Language](body)
}

func (c *Client) UpdateLanguage(id int, input UpdateLanguageInput) error {
	_, err := c.put(fmt.Sprintf("/languages/%d", id), input)
	return err
}

func (c *Client) DeleteLanguage(id int) error {
	_, err := c.del(fmt.Sprintf("/languages/%d", id))
	return err
}
