package blueprint

// Sample is a commented blueprint documenting the available fields. It is
// what `swaggyp init` writes.
const Sample = `# swaggyp blueprint (YAML or JSON)
# Each section maps onto a Swagger 2.0 object. Required fields are marked.

swagger: "2.0"

# required: title and version
info:
  title: Users API
  description: Manage users.
  version: 1.0.0
  contact:
    name: API Team
    email: api@example.com
  license:
    name: MIT

host: api.example.com
basePath: /v1          # required
schemes: [https]       # required: http, https, ws, wss
consumes: [application/json]
produces: [application/json]

# Reusable schemas, referenced as "#/definitions/<name>".
definitions:
  - name: User
    schema:
      type: object
      required: [name]
      properties:
        id:
          type: string
        name:
          type: string

# Each path lists its operations; responses are keyed by statusCode.
paths:
  - endpoint: /users
    operations:
      - httpMethod: post
        summary: Create a user
        parameters:
          - name: body
            in: body
            required: true
            schema:
              $ref: "#/definitions/User"
        responses:
          - statusCode: 201
            description: Created
            schema:
              $ref: "#/definitions/User"
  - endpoint: /users/{id}
    operations:
      - httpMethod: get
        summary: Fetch a user
        parameters:
          - name: id
            in: path
            type: string
            required: true
        responses:
          - statusCode: 200
            description: The user
            schema:
              $ref: "#/definitions/User"
          - statusCode: 404
            description: Not found
`
