package api

import "fmt"

func (c *Client) ListPrompts() ([]Prompt, error) {
	body, err := c.get("/prompts")
	if err != nil {
		return nil, err
	}
	return decodeList[Prompt](body)
}

func (c *Client) GetPrompt(id int) (*Prompt, error) {
	body, err := c.get(fmt.Sprintf("/prompts/%d", id))
	if err != nil {
		return nil, err
	}
	return decodeOne[Prompt](body)
}

func (c *Client) CreatePrompt(input CreatePromptInput) (*Prompt, error) {
	body, err := c.post("/prompts", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Prompt](body)
}

func (c *Client) UpdatePrompt(id int, input UpdatePromptInput) error {
	_, err := c.put(fmt.Sprintf("/prompts/%d", id), input)
	return err
}

func (c *Client) DeletePrompt(id int) error {
	_, err := c.del(fmt.Sprintf("/prompts/%d", id))
	return err
}
