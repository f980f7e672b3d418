package api

import "fmt"

func (c *Client) ListResponses() ([]Response, error) {
	body, err := c.get("/responses")
	if err != nil {
		return nil, err
	}
	return decodeList[Response](body)
}

func (c *Client) GetResponse(id int) (*Response, error) {
	body, err := c.get(fmt.Sprintf("/responses/%d", id))
	if err != nil {
		return nil, err
	}
	return decodeOne[Response](body)
}

func (c *Client) CreateResponse(input CreateResponseInput) (*Response, error) {
	body, err := c.post("/responses", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Response](body)
}

func (c *Client) UpdateResponse(id int, input UpdateResponseInput) error {
	_, err := c.put(fmt.Sprintf("/responses/%d", id), input)
	return err
}

func (c *Client) DeleteResponse(id int) error {
	_, err := c.del(fmt.Sprintf("/responses/%d", id))
	return err
}
