package graphql

// Schema is the GraphQL schema served by the marketplace.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		getUser(id: ID!): User
		getUsers: [User!]!
		currentUser: User
		getAllNFTs: [NFT!]!
		getNFTById(id: ID!): NFT!
		getNFTsByUserId(userId: ID!): [NFT!]!
		getNFTsByCategory(category: String!): [NFT!]!
		getProfile: Profile!
	}

	type Mutation {
		register(options: RegisterUserInput!): User!
		login(options: LoginUserInput!): User!
		updatePassword(id: ID!, options: UpdatePasswordInput!): Boolean!
		updateUserInfo(id: ID!, options: UpdateUserInput!): Boolean!
		deleteUser(id: ID!): Boolean!
		createNFT(options: CreateNFTInput!): NFT!
		updateNFTById(id: ID!, options: UpdateNFTInput!): Boolean!
		deleteNFTById(id: ID!): Boolean!
		createProfile(options: CreateProfileInput!): Profile!
		updateProfile(options: UpdateProfileInput!): Boolean!
	}

	type User {
		id: ID!
		username: String!
		email: String!
	}

	type NFT {
		id: ID!
		title: String!
		shortDescription: String!
		longDescription: String!
		category: String!
		imageURI: String!
		sourceURI: String!
		createdAt: String!
		creator: User!
	}

	type Profile {
		id: ID!
		bio: String
		profileImageURI: String
		creatorId: ID!
		creator: User!
	}

	input RegisterUserInput {
		username: String!
		email: String!
		password: String!
	}

	input LoginUserInput {
		email: String!
		password: String!
	}

	input UpdatePasswordInput {
		oldPassword: String!
		newPassword: String!
	}

	input UpdateUserInput {
		username: String
		email: String
	}

	input CreateNFTInput {
		title: String!
		shortDescription: String!
		longDescription: String!
		category: String!
		imageURI: String!
		sourceURI: String!
	}

	input UpdateNFTInput {
		title: String
		shortDescription: String
		longDescription: String
		category: String
		imageURI: String
		sourceURI: String
	}

	input CreateProfileInput {
		bio: String
		profileImageURI: String
	}

	input UpdateProfileInput {
		bio: String
		profileImageURI: String
	}
`
