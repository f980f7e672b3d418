package api

import "fmt"

func (c *Client) ListUsers() ([]User, error) {
	body, err := c.get("/users")
	if err != nil {
		return nil, err
	}
	return decodeList[User](body)
}

func (c *Client) CreateUser(input CreateUserInput) (*User, error) {
	body, err := c.post("/users", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[User](body)
}

func (c *Client) UpdateUser(id int, input UpdateUserInput) error {
	_, err := c.put(fmt.Sprintf("/users/%d", id), input)
	return err
}

func (c *Client) DeleteUser(id int) error {
	_, err := c.del(fmt.Sprintf("/users/%d", id))
	return err
}
