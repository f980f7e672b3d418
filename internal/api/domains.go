package api

import "fmt"

func (c *Client) ListDomains() ([]Domain, error) {
	body, err := c.get("/domains")
	if err != nil {
		return nil, err
	}
	return decodeList[Domain](body)
}

func (c *Client) CreateDomain(input CreateDomainInput) (*Domain, error) {
	body, err := c.post("/domains", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Domain](body)
}

func (c *Client) UpdateDomain(id int, input UpdateDomainInput) error {
	_, err := c.put(fmt.Sprintf("/domains/%d", id), input)
	return err
}

func (c *Client) DeleteDomain(id int) error {
	_, err := c.del(fmt.Sprintf("/domains/%d", id))
	return err
}
