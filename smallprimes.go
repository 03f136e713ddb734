package primality

import "math/big"

// The sieve constants below are pure data: the product of every prime up to
// 191, and an ordered list of products jointly covering every prime from 193
// to 23029. No single product contains two primes whose product is <= 23029,
// so a nontrivial gcd with a candidate pins an actual prime factor.

// tinyPrimes holds every prime below 192, in ascending order. They double as
// the Miller-Rabin witness set.
var tinyPrimes = [...]int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
	127, 131, 137, 139, 149, 151, 157, 163, 167, 173,
	179, 181, 191,
}

// smallSieveExact is 193^2. Below it, a candidate sharing no factor with
// tinyPrimeProduct cannot be composite.
var smallSieveExact = big.NewInt(37249)

var tinyPrimeProduct = mustParseHex("24776ffd3cbd21c872eccd26ad078c5ba0586e2e57cf68515e3c4828a673a6e")

var smallPrimeProducts = [...]*big.Int{
	mustParseHex("f0b12992ef8b81c547634eea1fd5c9fc538d370587f39659fb398972cffbf783"), mustParseHex("f0b3b7671ec5b6e5e25d0675e9c16fd7a30417c2f5e25ba7a281314c9be0bead"),
	mustParseHex("f0b3d8c409c87fe8c6c762a1203f49cf5371e52a6b5fa52dcd9fc0ad5c6a9ab5"), mustParseHex("f0b41dbd5e708420183e03ee153be61e4170c1576436076dc4969d57aabcd7d5"),
	mustParseHex("f0b508af3b8c4678520337591a3fcd41f2640c6b4cf5ed93e7ad037f7a5aaea9"), mustParseHex("f0b53ed041fd15c397d88dae674b9f265c429aac1d7e93abad52f25361613c59"),
	mustParseHex("f0b58d076f49988dd7ece3ec92116c682ba1b0123e07de91a6ad2ea3647a8add"), mustParseHex("f0b5c651c40ebf34749f905b17547c4f76769a8622468ee9ef10c5a374790d4b"),
	mustParseHex("f0b5f669ea7ca5033b5ce8ed2199eb0776a5dffde67c4ec38713c7f04877ffc9"), mustParseHex("f0b619115a99ffb6a3f1fb7a06846d5d27655841b2f528c3648bd8f76da98935"),
	mustParseHex("f0b61ee681feb5d7abd940c4b257f2b741015b3e37504f2f63852950ec04efbb"), mustParseHex("f0b6293a7e253db3fb6ffff806745da4f44786cd4f1d5dc864e25f3b86ada53f"),
	mustParseHex("f0b66a8c330f6ac0d48c7b876f73c3d5824fcfce3323b219e21d6109c5262243"), mustParseHex("f0b67415f3041494074193480f4c9cb8c1c2925daa6d8d8b51c7590ec3961e1d"),
	mustParseHex("f0b67c1a8bd13a255742c0e6402ca0af76ebb24b6da4e8784e2b41a72d0973f7"), mustParseHex("f0b691d4b889b9213a42c7f4cb9d30f95a4b7b3cd232058ce4cd86ef81047d89"),
	mustParseHex("f0b6aa21c614ff60d140f8aa318ee9ea3579a7ef5e71b22b72328bcd1b688799"), mustParseHex("f0b6bc3384ce25a149cd648de4883bb48fab0f36303a83c155c216536effcf53"),
	mustParseHex("f0b6e31bf3736d1d077b47e957002a1cef3ef9f7f74d2d74a5f189c1212f66a3"), mustParseHex("f0b73742581dff819b94af1ae47990bc381a0e7f274add69096734fc5b54b417"),
	mustParseHex("f0b76a3cc0b105e5935147f2c71d076481422d8756f852fda25d7efaa167e309"), mustParseHex("f0b76ede0a6ad031740ff096a439c9ec8347955fb092abc26d6aa46d6cb1b661"),
	mustParseHex("f0b784a8672c5fe26bc3898788455abb3556749391df80928495a3a5427e6053"), mustParseHex("f0b789679b8cb36c1a70e7e1e20dbf2fc3cf985c2239cc1744b238f11bdb72ab"),
	mustParseHex("f0b7e84f64019a8e247fa3dffb5c2c0093e76a16513ac80c033d6475694a8a3b"), mustParseHex("f0b8234e3cae929038f931d1740f2fa8834dd99bfc658a4b59eb845d3ffad3bb"),
	mustParseHex("f0b824aae76ce20951746cd5c4b03fc8e1475d5cabeb2562b811a69098fad943"), mustParseHex("f0b83093e3a104f4c0e030b35d787a239f80dcace0960da887a7181996101c83"),
	mustParseHex("f0b84087a080831948146ae6dcc7ae2b8f03e9dfeea1c9263442739b3517443b"), mustParseHex("f0b87379ffc50fbc9f24f93948971c3003d0d8d58e72610cf6ea2bc805ab4fb5"),
	mustParseHex("f0b874e6227c478fc44725a08bbe76cd780845ff08b1ba7fcded243093980b25"), mustParseHex("f0b87fc8fa082d8d5825477314c8373d013601db76451a441510e701d1c05b2b"),
	mustParseHex("f0b87fd347629ef63db3b16db23ea27a6d13e0d45e097efd651ab5dea38f63af"), mustParseHex("f0b89659246415c26ef7f4e097a0b70d7103b307f3f50107d7ca1bdd2563b7eb"),
	mustParseHex("f0b8a7ccb93cf01bb7437692f26d6ebc681157c7391c4e600b6d9cbcb82146db"), mustParseHex("f0b8d3a2d2800c049c1c3df8d2e4d5d0079f0ae05acccfb335bb5749963eece9"),
	mustParseHex("f0b8d6c39ce0c5c73c2802cafe4bb28f95356fe978eb5c7876d2ca5fe42e9bad"), mustParseHex("f0b8de933fc4198b62ebd1ca7bbbc0f36b8a2f0af316673aa2a0b58a0234fcdd"),
	mustParseHex("f0b8e4d833001fea1a96b852737576cd075c5d86ef68ab930ce3a7acc3c87fef"), mustParseHex("f0b8eb08a958d9f6bbf77f16dbce1b024fa3e95f0acc1ab4291f02b267596061"),
	mustParseHex("f0b90b332dc0836df05554f6eddf655887ec27a47c9e69496f328d54a59758d3"), mustParseHex("f0b9195a7fc04b74be7df65c6e766ab513574e311dea381232c5e88f8bc881bf"),
	mustParseHex("f0b93bec17cc2afdc15f953729ae7866c2b7c35c4fec5fba48fff38c57f51cb7"), mustParseHex("f0b94d816f0c16d066dc68e045acf249c7e75f57bf6c1a38222d262c26e08d13"),
	mustParseHex("f0b96b4fc2871dd09d5f29b6ba9937857536edd4481427d7461a5b327cf66233"), mustParseHex("f0b96ca06c3687719edbb39a982869397e51b0100ee7c4ab2f1434f262766ec1"),
	mustParseHex("f0b97e689439ad7bd936364e4861210bbbe8d618ce62acd716b189c7ddc0d369"), mustParseHex("f0b988d3fb06c2eb0629b5ec3dd2e47e71d48b21cd4bea542beaf2cdd388c9b3"),
	mustParseHex("f0b9b6ae75684090897f6ed767513cd4cb04268ce130b5d77916fd19bcad8895"), mustParseHex("f0b9da1379cd2b2d4eaa326a0387436c38515d01456344bb34cce8e4c1558135"),
	mustParseHex("f0b9ebc4863627bdf412776635d37fa084dfcf3a80f0f41ec935eb13ff023e35"), mustParseHex("f0b9fc05fd0225dd82454d22cff02956d8ba95747b92e844136ef7cc41e92397"),
	mustParseHex("f0ba277991f9a5ef68f904b61514aa3efa0fe9ce0ca9d3b87ae669a2d0bd26df"), mustParseHex("f0ba5caad14f29c7953c797c841c5706b89948e1792e6e1695b85dde055047bf"),
	mustParseHex("f0ba6be2c0f41604d4a8caacbad2003263aa129fc8c800413fa583e0d05bccdd"), mustParseHex("f0ba789802fcac23bad92f2f86babd33e5c6ee4101852342329398a525454513"),
	mustParseHex("f0ba86a3b6f08de12a1784dec44de26d7cea8268a7bc9b58cfd93fdeb3edfff9"), mustParseHex("f0bab92173050400024e9e410b118ba92a140c0406e9143fc9796f516a89ad37"),
	mustParseHex("f0baba49f3e40fc02404c45ef0b352e6914d781dc449f97cadbede1601968461"), mustParseHex("f0babe10edd7c6a51a03c13c0cb28638e4f48130f7de8d7cfb7155cc74d9fb5d"),
	mustParseHex("f0babee633821fba9353b11811650df4f07e57452ec0bbda3b6adee891c38091"), mustParseHex("f0bb07809cf3cfdc7d8649b2bb53a171c06bbc755837c34b744f0a5caf4f9261"),
	mustParseHex("f0bb08317da71ec02da76a0da7886c4b31d125ff9f63b85736ec130656012ed9"), mustParseHex("f0bb0dd0b8dd5f2639a3c0da5ec3ab8db28194253ded386721c6535d8a75bddd"),
	mustParseHex("f0bb2af1f49306a40d7faeaa5c21d96d905be0e1718b32020d6181ea4c5ebd73"), mustParseHex("f0bb40959e34edc95424514262c60be6aea1753db958ab29f037fb5be9fadf99"),
	mustParseHex("f0bb47688b5ad1596c6950a83521fbb37e4da5931d7e20f154d8ed10328563c5"), mustParseHex("f0bb4edab1d7532ee55aa17dd961ce75c66d1f36bcb5ff09dde3e7ee7aebc59f"),
	mustParseHex("f0bb59322274066cc65f215afcc6253e7e83b3f1d3c7ad9857902c0e01a531d9"), mustParseHex("f0bb6229b56cdef76adc1f875f0f956a86a49cedd148690eea606510f6f75b99"),
	mustParseHex("f0bb72d5b03a5bc86e2f925edb70b3a70a83a8565304e8d7527c2445ef72fff3"), mustParseHex("f0bb86e1e3e049097678086b5a2d1776241135c3987aab67031e2771455e8655"),
	mustParseHex("f0bba45ddcf417cfc1ae6730e605a31e1382e48351c7e058400c08828c282a89"), mustParseHex("f0bbc443249e73da9c2a85e3752cf55d3744c83ce630feef068ef4d64151b8ef"),
	mustParseHex("f0bbe758b62c80118696ef3cd05a41f89bc6532f40fa7fa3dd39e45568d43d0d"), mustParseHex("f0bbebda722555437dfc1f014cf7b2375353ee7c8e2568a71613b639ca05438d"),
	mustParseHex("f0bbf1f53793d05ce59971b8c9a77491ff7db929bd16c1949b18f30f58590fb1"), mustParseHex("f0bc09e0fc545b48d58cf44f3e61c7c6e21dd75ae854f04f3e3f14fc93c41c59"),
	mustParseHex("f0bc18e3d6800bb5329aefb457035e1fac5a53ec59e52f6128c739871d4c211d"), mustParseHex("f0bc1f092d7aa9df1d0d53c2fcaeb0047a2084c7da46a4380937ffab263bea69"),
	mustParseHex("f0bc443a0968a09c6ab5bf7ca7df7a7583c0775b1f2a6288a1ae8f02683b493b"), mustParseHex("f0bc53ac970770d62a4955c0dc6cdb80c1e94044b8a6ba50dcda7055bc857c65"),
	mustParseHex("f0bc7bd93df5bbaf7944ef6ed9424252cdf6fa1cd844f591145189cab61b222f"), mustParseHex("f0bc83db4ef74329a469644e26033a00c0d79b63d6c17c72e224f14ac835d3df"),
	mustParseHex("f0bca134473317cc4928c1a15450b449f57e4b1e5038bc440958c5b411de3d3d"), mustParseHex("f0bcca66bf88e9829a345d567fa9997a6822db200d3aad1a03e1090d90059f5d"),
	mustParseHex("f0bcdc1f4979f2c26beac4c74292cb5c58c2697e17d15dc26b25a1276c1d4c69"), mustParseHex("f0bcf30342ba3bae35884a2aadf45741694b4c725b6455ceb2cb219fbbed95b1"),
	mustParseHex("f0bd17ec50b93b71c5c6fd2c3e5976fe090d630e998e92fd9a6122599779b327"), mustParseHex("f0bd68b767c3e3f829564bfb4e4cd3114ae844bc9f05d08f508d1e6ec2cdb65f"),
	mustParseHex("f0bd73f1ef4c82fb0c069337fdd30706a14cee221ee4b537a48c0de6fa7d184b"), mustParseHex("f0bd86701e1725e1d21b4c7ce7deb360f37c15b74690b0063689671e4328a053"),
	mustParseHex("f0bdc43246df15624b067b919b5ae4746e7afe7199e21cf291bbbff3fe85bd6d"), mustParseHex("f0bdc955b45efaef6e8bb19f31eade71d331692e3d94e9cecba5aa1642b1f315"),
	mustParseHex("f0be11675f15a69b00f5397501ba9fed8d5eaaceb8de3c661c2bfd6001526b5b"), mustParseHex("f0be26469b2ef62860375e02b8fcdbd15ef5359785743d1c28f21550838e7543"),
	mustParseHex("f0be5b6c3081fbd75b0a70f2d7980b16d8c8a6172cf435167cfd0e0624bba231"), mustParseHex("f0be9f3ef56ab22d34157477d117d82ba7da29268ac231a42ed26b419ea1fbc5"),
	mustParseHex("f0becf03d0d0786643956a5775be2eb5d140bd7252e909d9ef5ee6d82149ebcb"), mustParseHex("f0bedb41904507efcc8b1a4f5312b1a2d908cccb4e697fb42b5578cdf92f2bd1"),
	mustParseHex("f0befa63c540f9a9e10db2e0d4ad9387b9972c58438a17fcc17c157ca2470fdf"), mustParseHex("f0bf11e611e1c64874403988cbb5ebf74831fcbfa644eabd2974cb4eba867a13"),
	mustParseHex("f0bf1539d32ac8b2cbc4d7e8af6dd38bef0499ea367bff151cc71f4f8fad4bdf"), mustParseHex("f0bf26fa50161661d611f4e686678cff9af17e62192224804f78c0c4b9209345"),
	mustParseHex("f0bf3210f76d1173cc16302bd71dc94a680ea53115244e1e216ad2e6bb3ecb91"), mustParseHex("f0bf3fb4f937d2a8c8c8d06a12127f478a5b00feef73522c48173aa935a37753"),
	mustParseHex("f0bf41b6aac58218bf412eac7b3add3179d244517d9ba1e334a725edc64f1f65"), mustParseHex("f0bf5b25e182bf46c592a00b500ea3768b018c85fd6729cafc7f5022be958fc9"),
	mustParseHex("f0bf6b4a808581a9f3ba9683d4146459bd6a694fd4eeceb4d7bb5177413e3017"), mustParseHex("f0bfeae26302ddbd253a42142e6e5fedcb286a9fb83c77ee814159eba4aecc33"),
	mustParseHex("f0c015ab5ccd2646e8b6c2bebdd7de8d830031ecab84105a0f9a28f7da7005e5"), mustParseHex("f0c016f081cca6bf621844519a3f14750c158654feb8af24fa58e14e23e53d8f"),
	mustParseHex("f0c07c159e43b2379fbd9d94ba3b1d06ff840bf265aeeb9d9a37342b5e55810f"), mustParseHex("f0c0f70cd48c5da950577924cf3371404fbe20fc8404679d8fb0b8baa459f729"),
	mustParseHex("f0c13fba0f8c6592dd8f6e4e70c49163eca68352ec2024b7eecb7ccf6becef1d"), mustParseHex("f0c1602de4169c419b997ad90fe646b525b92f4d8f896351130d8a598bb619d7"),
	mustParseHex("f0c17d90c4b3baedc6fc527312cbadfd804d968134f613c0b772c6422fab1027"), mustParseHex("f0c17e27997ae15e319e78aaa50310b9df39ab896b63f5713cc3ead992764837"),
	mustParseHex("f0c1935246756e54db1b2a5a206dda4ad70ae7091fbf9cd7d1d0880282cce7d9"), mustParseHex("f0c1b12eac191636b58fba296ad72aea52dc4dec9de98aad80e6eb9fb83fc46d"),
	mustParseHex("f0c1c914774dbcc98871fd25104dbf73e9e02c388ca4109c991f7880203f7145"), mustParseHex("f0c261064514ba9db2970b7b3adc4f0b394d93a62721575c83fc7579795c1143"),
	mustParseHex("f0c28a1aee625c840d024f0129a3eeb01409f9f166554d1b7615b3bb9978db5f"), mustParseHex("f0c292cc74d2ce7ade802a5160b52fb4e6ffd8025e5e4b473ea2affb8ed4079b"),
	mustParseHex("f0c2ba5783a5f49602cc83aa59fe4eaf30c6e88fa6835fd977271f01fb354843"), mustParseHex("f0c34aa1137f3d63ddf79259f3c966b0f7c212fced0397c2005074f1c6e80ecd"),
	mustParseHex("f0c43bbb54cf79f58653e097cb84a1855b4da4890b068d93eb86cbd8fefbad47"), mustParseHex("f0c76315da810f414c45ac59918c5a33c9f28085eb3dd5aa01eee87d5f69e4f3"),
}

func mustParseHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("primality: bad embedded constant " + s)
	}
	return n
}
