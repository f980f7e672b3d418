package api

import "fmt"

func (c *Client) ListTargets() ([]Target, error) {
	body, err := c.get("/targets")
	if err != nil {
		return nil, err
	}
	return decodeList[Target](body)
}

func (c *Client) GetTarget(id int) (*Target, error) {
	body, err := c.get(fmt.Sprintf("/targets/%d", id))
	if err != nil {
		return nil, err
	}
	return decodeOne[Target](body)
}

func (c *Client) CreateTarget(input CreateTargetInput) (*Target, error) {
	body, err := c.post("/targets", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Target](body)
}

func (c *Client) UpdateTarget(id int, input UpdateTargetInput) error {
	_, err := c.put(fmt.Sprintf("/targets/%d", id), input)
	return err
}

func (c *Client) DeleteTarget(id int) error {
	_, err := c.del(fmt.Sprintf("/targets/%d", id))
	return err
}
