package api

import "fmt"

func (c *Client) ListStrategies() ([]Strategy, error) {
	body, err := c.get("/strategies")
	if err != nil {
		return nil, err
	}
	return decodeList[Strategy](body)
}

func (c *Client) CreateStrategy(input CreateStrategyInput) (*Strategy, error) {
	body, err := c.post("/strategies", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Strategy](body)
}

func (c *Client) UpdateStrategy(id int, input UpdateStrategyInput) error {
	_, err := c.put(fmt.Sprintf("/strategies/%d", id), input)
	return err
}

func (c *Client) DeleteStrategy(id int) error {
	_, err := c.del(fmt.Sprintf("/strategies/%d", id))
	return err
}
